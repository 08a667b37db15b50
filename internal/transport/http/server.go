package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/bootstrap"
	"github.com/harley-is-not-available/ClosetManager/internal/cache"
	"github.com/harley-is-not-available/ClosetManager/internal/repository"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/handler"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	itemRepo := repository.NewItemRepository(app.MySQL)
	outfitRepo := repository.NewOutfitRepository(app.MySQL)
	collectionRepo := repository.NewCollectionRepository(app.MySQL)

	var itemCache appsvc.ItemListCache
	if app.Redis != nil {
		itemCache = cache.NewItemCache(
			app.Redis,
			time.Duration(app.Config.Redis.ItemsTTLSeconds)*time.Second,
			time.Duration(app.Config.Redis.ItemsDirtyTTLSecond)*time.Second,
		)
	}

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	itemService := appsvc.NewItemService(itemRepo, itemCache)
	uploadService := appsvc.NewUploadService(itemRepo, app.ImageStore, itemCache)
	outfitService := appsvc.NewOutfitService(outfitRepo)
	collectionService := appsvc.NewCollectionService(collectionRepo)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	outfitHandler := handler.NewOutfitHandler(outfitService)
	collectionHandler := handler.NewCollectionHandler(collectionService)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	itemGroup := v1.Group("/items")
	itemGroup.GET("", itemHandler.List)
	itemGroup.POST("", itemHandler.Create)
	itemGroup.GET("/:id", itemHandler.Get)
	itemGroup.PUT("/:id", itemHandler.Update)
	itemGroup.DELETE("/:id", itemHandler.Delete)
	itemGroup.DELETE("/:id/image", uploadHandler.DeleteImage)

	v1.POST("/upload", uploadHandler.Upload)

	outfitGroup := v1.Group("/outfits")
	outfitGroup.GET("", outfitHandler.List)
	outfitGroup.POST("", outfitHandler.Create)
	outfitGroup.GET("/:id", outfitHandler.Get)
	outfitGroup.PUT("/:id", outfitHandler.Update)
	outfitGroup.DELETE("/:id", outfitHandler.Delete)

	collectionGroup := v1.Group("/collections")
	collectionGroup.GET("", collectionHandler.List)
	collectionGroup.POST("", collectionHandler.Create)
	collectionGroup.GET("/:id", collectionHandler.Get)
	collectionGroup.PUT("/:id", collectionHandler.Update)
	collectionGroup.DELETE("/:id", collectionHandler.Delete)

	return router
}

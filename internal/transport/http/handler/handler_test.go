package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/model"
	"github.com/harley-is-not-available/ClosetManager/internal/storage"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/middleware"
)

type memUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func (m *memUserStore) Create(user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type memItemStore struct {
	items  map[uint]*model.ClothingItem
	nextID uint
}

func (m *memItemStore) Create(item *model.ClothingItem) error {
	item.ID = m.nextID
	m.nextID++
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemStore) GetByIDAndUserID(itemID, userID uint) (*model.ClothingItem, error) {
	item, ok := m.items[itemID]
	if !ok || item.UserID != userID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (m *memItemStore) ListByUserID(userID uint) ([]model.ClothingItem, error) {
	var out []model.ClothingItem
	for id := uint(1); id < m.nextID; id++ {
		if item, ok := m.items[id]; ok && item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *memItemStore) Save(item *model.ClothingItem) error {
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemStore) DeleteByIDAndUserID(itemID, userID uint) (bool, error) {
	item, ok := m.items[itemID]
	if !ok || item.UserID != userID {
		return false, nil
	}
	delete(m.items, itemID)
	return true, nil
}

const testJWTSecret = "handler-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userStore := &memUserStore{users: map[uint]*model.User{}, nextID: 1}
	itemStore := &memItemStore{items: map[uint]*model.ClothingItem{}, nextID: 1}
	imageStore, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	authService := app.NewAuthService(userStore, testJWTSecret, time.Hour)
	itemService := app.NewItemService(itemStore, nil)
	uploadService := app.NewUploadService(itemStore, imageStore, nil)

	authHandler := NewAuthHandler(authService)
	itemHandler := NewItemHandler(itemService)
	uploadHandler := NewUploadHandler(uploadService)

	router := gin.New()
	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(testJWTSecret), authHandler.Me)

	itemGroup := v1.Group("/items")
	itemGroup.GET("", itemHandler.List)
	itemGroup.POST("", itemHandler.Create)
	itemGroup.GET("/:id", itemHandler.Get)
	itemGroup.PUT("/:id", itemHandler.Update)
	itemGroup.DELETE("/:id", itemHandler.Delete)
	itemGroup.DELETE("/:id/image", uploadHandler.DeleteImage)

	v1.POST("/upload", uploadHandler.Upload)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func registerUser(t *testing.T, router *gin.Engine, email string) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     email,
		"password":  "pw1",
		"full_name": "Test User",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	return uint(data["id"].(float64))
}

func TestRegisterAndDuplicate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "a@x.com",
		"password":  "pw1",
		"full_name": "A",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "a@x.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, w.Body.String(), "salt")

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "a@x.com",
		"password":  "pw2",
		"full_name": "A again",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterRejectsMalformedPayload(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "pw1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "a@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "a@x.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeData(t, w)["access_token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

func createItem(t *testing.T, router *gin.Engine, userID uint, name string) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, itemsPath(userID), gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code)
	return uint(decodeData(t, w)["id"].(float64))
}

func itemsPath(userID uint) string {
	return "/api/v1/items?user_id=" + itoa(userID)
}

func itemPath(itemID, userID uint) string {
	return "/api/v1/items/" + itoa(itemID) + "?user_id=" + itoa(userID)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestItemCreateIgnoresPayloadOwner(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, itemsPath(1), gin.H{
		"name":    "Shirt",
		"user_id": 9,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["user_id"])
}

func TestItemGetAcrossOwnersIs404(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	req := httptest.NewRequest(http.MethodGet, itemPath(itemID, 2), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, itemPath(itemID, 1), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItemListEmptyIs200(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, itemsPath(5), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItemListRequiresUserID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemUpdate(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	w := doJSON(t, router, http.MethodPut, itemPath(itemID, 1), gin.H{"color": "red"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "red", data["color"])
	assert.Equal(t, "Shirt", data["name"])

	w = doJSON(t, router, http.MethodPut, itemPath(itemID, 2), gin.H{"color": "green"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemDelete(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	req := httptest.NewRequest(http.MethodDelete, itemPath(itemID, 1), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, itemPath(itemID, 1), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func uploadRequest(t *testing.T, itemID, userID uint, filename string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("item_id", itoa(itemID)))
	require.NoError(t, writer.WriteField("user_id", itoa(userID)))
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadAndDeleteImage(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, itemID, 1, "photo.png", []byte("png-bytes")))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.NotEmpty(t, data["image_data"])

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/items/"+itoa(itemID)+"/image?user_id=1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete finds no image and reports not found.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/items/"+itoa(itemID)+"/image?user_id=1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadMissingFileIs400(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, itemID, 1, "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadForeignItemIs404(t *testing.T) {
	router := newTestRouter(t)
	itemID := createItem(t, router, 1, "Shirt")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, itemID, 2, "photo.png", []byte("png-bytes")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

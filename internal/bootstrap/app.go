package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/harley-is-not-available/ClosetManager/internal/config"
	"github.com/harley-is-not-available/ClosetManager/internal/model"
	mysqlClient "github.com/harley-is-not-available/ClosetManager/internal/platform/mysql"
	redisClient "github.com/harley-is-not-available/ClosetManager/internal/platform/redis"
	"github.com/harley-is-not-available/ClosetManager/internal/storage"
)

type App struct {
	Config     *config.Config
	MySQL      *gorm.DB
	Redis      *redis.Client
	ImageStore *storage.LocalImageStore

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN(), mysqlClient.Options{
		MaxOpenConns: cfg.MySQL.MaxOpenConns,
		MaxIdleConns: cfg.MySQL.MaxIdleConns,
	})
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.ClothingItem{},
		&model.Outfit{},
		&model.Collection{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	var redisCli *redis.Client
	if cfg.Redis.Enabled {
		redisCli, err = redisClient.New(ctx, redisClient.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// The listing cache is an optimization; run without it.
			log.Printf("redis unavailable, item cache disabled: %v", err)
			redisCli = nil
		}
	}

	imageStore, err := storage.NewLocalImageStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		MySQL:      mysqlDB,
		Redis:      redisCli,
		ImageStore: imageStore,
		StartedAt:  time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

// ItemCache keeps a per-user snapshot of the closet listing. A short-lived
// dirty marker set on every mutation suppresses refills while the DB write
// settles.
type ItemCache struct {
	client         *redisv9.Client
	itemsTTL       time.Duration
	dirtyMarkerTTL time.Duration
}

func NewItemCache(client *redisv9.Client, itemsTTL, dirtyMarkerTTL time.Duration) *ItemCache {
	if itemsTTL <= 0 {
		itemsTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &ItemCache{
		client:         client,
		itemsTTL:       itemsTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *ItemCache) GetItems(ctx context.Context, userID uint) ([]model.ClothingItem, bool, error) {
	key := c.itemsKey(userID)
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get items failed: %w", err)
	}

	var items []model.ClothingItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached items failed: %w", err)
	}
	return items, true, nil
}

func (c *ItemCache) SetItems(ctx context.Context, userID uint, items []model.ClothingItem) error {
	key := c.itemsKey(userID)
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items cache failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.itemsTTL).Err(); err != nil {
		return fmt.Errorf("redis set items failed: %w", err)
	}
	return nil
}

func (c *ItemCache) DeleteItems(ctx context.Context, userID uint) error {
	key := c.itemsKey(userID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete items failed: %w", err)
	}
	return nil
}

func (c *ItemCache) MarkDirty(ctx context.Context, userID uint) error {
	key := c.dirtyKey(userID)
	if err := c.client.Set(ctx, key, "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *ItemCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	key := c.dirtyKey(userID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *ItemCache) itemsKey(userID uint) string {
	return fmt.Sprintf("closet:items:%d", userID)
}

func (c *ItemCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("closet:items:dirty:%d", userID)
}

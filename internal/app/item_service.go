package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

// ItemStore is the persistence surface for clothing items.
type ItemStore interface {
	Create(item *model.ClothingItem) error
	GetByIDAndUserID(itemID, userID uint) (*model.ClothingItem, error)
	ListByUserID(userID uint) ([]model.ClothingItem, error)
	Save(item *model.ClothingItem) error
	DeleteByIDAndUserID(itemID, userID uint) (bool, error)
}

// ItemListCache holds per-user listing snapshots. Optional; a nil cache
// means every listing hits the database.
type ItemListCache interface {
	GetItems(ctx context.Context, userID uint) ([]model.ClothingItem, bool, error)
	SetItems(ctx context.Context, userID uint, items []model.ClothingItem) error
	DeleteItems(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

type ItemService struct {
	itemStore ItemStore
	listCache ItemListCache
}

type CreateItemInput struct {
	Name         string
	Description  string
	Category     string
	Size         string
	Color        string
	Price        float64
	PurchaseDate *time.Time
}

// ItemPatch overwrites only the fields that are non-nil.
type ItemPatch struct {
	Name         *string
	Description  *string
	Category     *string
	Size         *string
	Color        *string
	Price        *float64
	PurchaseDate *time.Time
}

func NewItemService(itemStore ItemStore, listCache ItemListCache) *ItemService {
	return &ItemService{
		itemStore: itemStore,
		listCache: listCache,
	}
}

// Create inserts an item owned by userID. An owner carried inside the payload
// is never consulted; the input struct does not even have the field.
func (s *ItemService) Create(input CreateItemInput, userID uint) (*model.ClothingItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price < 0 {
		return nil, ErrInvalidInput
	}

	item := &model.ClothingItem{
		UserID:       userID,
		Name:         name,
		Description:  input.Description,
		Category:     input.Category,
		Size:         input.Size,
		Color:        input.Color,
		Price:        input.Price,
		PurchaseDate: input.PurchaseDate,
	}
	if err := s.itemStore.Create(item); err != nil {
		return nil, err
	}
	s.invalidateListing(userID)
	return item, nil
}

func (s *ItemService) Get(itemID, userID uint) (*model.ClothingItem, error) {
	if itemID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	item, err := s.itemStore.GetByIDAndUserID(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) List(userID uint) ([]model.ClothingItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	ctx := context.Background()
	if s.listCache != nil {
		dirty, err := s.listCache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.listCache.GetItems(ctx, userID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	items, err := s.itemStore.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if s.listCache != nil {
		if dirty, dirtyErr := s.listCache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			_ = s.listCache.SetItems(ctx, userID, items)
		}
	}
	return items, nil
}

func (s *ItemService) Update(itemID uint, patch ItemPatch, userID uint) (*model.ClothingItem, error) {
	if itemID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidInput
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrInvalidInput
	}

	item, err := s.itemStore.GetByIDAndUserID(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Size != nil {
		item.Size = *patch.Size
	}
	if patch.Color != nil {
		item.Color = *patch.Color
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.PurchaseDate != nil {
		item.PurchaseDate = patch.PurchaseDate
	}
	item.UpdatedAt = time.Now()

	if err := s.itemStore.Save(item); err != nil {
		return nil, err
	}
	s.invalidateListing(userID)
	return item, nil
}

func (s *ItemService) Delete(itemID, userID uint) error {
	if itemID == 0 || userID == 0 {
		return ErrInvalidInput
	}
	deleted, err := s.itemStore.DeleteByIDAndUserID(itemID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	s.invalidateListing(userID)
	return nil
}

func (s *ItemService) invalidateListing(userID uint) {
	if s.listCache == nil {
		return
	}
	ctx := context.Background()
	_ = s.listCache.MarkDirty(ctx, userID)
	_ = s.listCache.DeleteItems(ctx, userID)
}

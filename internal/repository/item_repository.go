package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *model.ClothingItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("create clothing item failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) GetByIDAndUserID(itemID, userID uint) (*model.ClothingItem, error) {
	var item model.ClothingItem
	if err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clothing item failed: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) ListByUserID(userID uint) ([]model.ClothingItem, error) {
	var items []model.ClothingItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list clothing items failed: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Save(item *model.ClothingItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("save clothing item failed: %w", err)
	}
	return nil
}

// DeleteByIDAndUserID reports whether a row was actually removed.
func (r *ItemRepository) DeleteByIDAndUserID(itemID, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&model.ClothingItem{})
	if result.Error != nil {
		return false, fmt.Errorf("delete clothing item failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

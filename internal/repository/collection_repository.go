package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(collection *model.Collection) error {
	if err := r.db.Create(collection).Error; err != nil {
		return fmt.Errorf("create collection failed: %w", err)
	}
	return nil
}

func (r *CollectionRepository) GetByIDAndUserID(collectionID, userID uint) (*model.Collection, error) {
	var collection model.Collection
	if err := r.db.Where("id = ? AND user_id = ?", collectionID, userID).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection failed: %w", err)
	}
	return &collection, nil
}

func (r *CollectionRepository) ListByUserID(userID uint) ([]model.Collection, error) {
	var collections []model.Collection
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("list collections failed: %w", err)
	}
	return collections, nil
}

func (r *CollectionRepository) Save(collection *model.Collection) error {
	if err := r.db.Save(collection).Error; err != nil {
		return fmt.Errorf("save collection failed: %w", err)
	}
	return nil
}

func (r *CollectionRepository) DeleteByIDAndUserID(collectionID, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", collectionID, userID).Delete(&model.Collection{})
	if result.Error != nil {
		return false, fmt.Errorf("delete collection failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

type OutfitRepository struct {
	db *gorm.DB
}

func NewOutfitRepository(db *gorm.DB) *OutfitRepository {
	return &OutfitRepository{db: db}
}

func (r *OutfitRepository) Create(outfit *model.Outfit) error {
	if err := r.db.Create(outfit).Error; err != nil {
		return fmt.Errorf("create outfit failed: %w", err)
	}
	return nil
}

func (r *OutfitRepository) GetByIDAndUserID(outfitID, userID uint) (*model.Outfit, error) {
	var outfit model.Outfit
	if err := r.db.Where("id = ? AND user_id = ?", outfitID, userID).First(&outfit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outfit failed: %w", err)
	}
	return &outfit, nil
}

func (r *OutfitRepository) ListByUserID(userID uint) ([]model.Outfit, error) {
	var outfits []model.Outfit
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&outfits).Error; err != nil {
		return nil, fmt.Errorf("list outfits failed: %w", err)
	}
	return outfits, nil
}

func (r *OutfitRepository) Save(outfit *model.Outfit) error {
	if err := r.db.Save(outfit).Error; err != nil {
		return fmt.Errorf("save outfit failed: %w", err)
	}
	return nil
}

func (r *OutfitRepository) DeleteByIDAndUserID(outfitID, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", outfitID, userID).Delete(&model.Outfit{})
	if result.Error != nil {
		return false, fmt.Errorf("delete outfit failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

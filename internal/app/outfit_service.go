package app

import (
	"errors"
	"strings"
	"time"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

var ErrOutfitNotFound = errors.New("outfit not found")

type OutfitStore interface {
	Create(outfit *model.Outfit) error
	GetByIDAndUserID(outfitID, userID uint) (*model.Outfit, error)
	ListByUserID(userID uint) ([]model.Outfit, error)
	Save(outfit *model.Outfit) error
	DeleteByIDAndUserID(outfitID, userID uint) (bool, error)
}

type OutfitService struct {
	outfitStore OutfitStore
}

type CreateOutfitInput struct {
	Name        string
	Description string
	ItemIDs     []uint
	Metadata    string
	IsPublic    bool
}

type OutfitPatch struct {
	Name        *string
	Description *string
	ItemIDs     *[]uint
	Metadata    *string
	IsPublic    *bool
}

func NewOutfitService(outfitStore OutfitStore) *OutfitService {
	return &OutfitService{outfitStore: outfitStore}
}

func (s *OutfitService) Create(input CreateOutfitInput, userID uint) (*model.Outfit, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	outfit := &model.Outfit{
		UserID:      userID,
		Name:        name,
		Description: input.Description,
		ItemIDs:     input.ItemIDs,
		Metadata:    input.Metadata,
		IsPublic:    input.IsPublic,
	}
	if err := s.outfitStore.Create(outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

func (s *OutfitService) Get(outfitID, userID uint) (*model.Outfit, error) {
	if outfitID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	outfit, err := s.outfitStore.GetByIDAndUserID(outfitID, userID)
	if err != nil {
		return nil, err
	}
	if outfit == nil {
		return nil, ErrOutfitNotFound
	}
	return outfit, nil
}

func (s *OutfitService) List(userID uint) ([]model.Outfit, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.outfitStore.ListByUserID(userID)
}

func (s *OutfitService) Update(outfitID uint, patch OutfitPatch, userID uint) (*model.Outfit, error) {
	if outfitID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidInput
	}

	outfit, err := s.outfitStore.GetByIDAndUserID(outfitID, userID)
	if err != nil {
		return nil, err
	}
	if outfit == nil {
		return nil, ErrOutfitNotFound
	}

	if patch.Name != nil {
		outfit.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		outfit.Description = *patch.Description
	}
	if patch.ItemIDs != nil {
		outfit.ItemIDs = *patch.ItemIDs
	}
	if patch.Metadata != nil {
		outfit.Metadata = *patch.Metadata
	}
	if patch.IsPublic != nil {
		outfit.IsPublic = *patch.IsPublic
	}
	outfit.UpdatedAt = time.Now()

	if err := s.outfitStore.Save(outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

func (s *OutfitService) Delete(outfitID, userID uint) error {
	if outfitID == 0 || userID == 0 {
		return ErrInvalidInput
	}
	deleted, err := s.outfitStore.DeleteByIDAndUserID(outfitID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOutfitNotFound
	}
	return nil
}

package app

import (
	"errors"
	"strings"
	"time"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

var ErrCollectionNotFound = errors.New("collection not found")

type CollectionStore interface {
	Create(collection *model.Collection) error
	GetByIDAndUserID(collectionID, userID uint) (*model.Collection, error)
	ListByUserID(userID uint) ([]model.Collection, error)
	Save(collection *model.Collection) error
	DeleteByIDAndUserID(collectionID, userID uint) (bool, error)
}

type CollectionService struct {
	collectionStore CollectionStore
}

type CreateCollectionInput struct {
	Name        string
	Description string
	ItemIDs     []uint
}

type CollectionPatch struct {
	Name        *string
	Description *string
	ItemIDs     *[]uint
}

func NewCollectionService(collectionStore CollectionStore) *CollectionService {
	return &CollectionService{collectionStore: collectionStore}
}

func (s *CollectionService) Create(input CreateCollectionInput, userID uint) (*model.Collection, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	collection := &model.Collection{
		UserID:      userID,
		Name:        name,
		Description: input.Description,
		ItemIDs:     input.ItemIDs,
	}
	if err := s.collectionStore.Create(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) Get(collectionID, userID uint) (*model.Collection, error) {
	if collectionID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	collection, err := s.collectionStore.GetByIDAndUserID(collectionID, userID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	return collection, nil
}

func (s *CollectionService) List(userID uint) ([]model.Collection, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.collectionStore.ListByUserID(userID)
}

func (s *CollectionService) Update(collectionID uint, patch CollectionPatch, userID uint) (*model.Collection, error) {
	if collectionID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidInput
	}

	collection, err := s.collectionStore.GetByIDAndUserID(collectionID, userID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	if patch.Name != nil {
		collection.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		collection.Description = *patch.Description
	}
	if patch.ItemIDs != nil {
		collection.ItemIDs = *patch.ItemIDs
	}
	collection.UpdatedAt = time.Now()

	if err := s.collectionStore.Save(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) Delete(collectionID, userID uint) error {
	if collectionID == 0 || userID == 0 {
		return ErrInvalidInput
	}
	deleted, err := s.collectionStore.DeleteByIDAndUserID(collectionID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCollectionNotFound
	}
	return nil
}

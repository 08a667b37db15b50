package app

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

var (
	ErrNoImage      = errors.New("item has no image")
	ErrUploadFailed = errors.New("no update performed")
)

// ImageStore writes and removes image files; rows keep the returned path.
type ImageStore interface {
	Save(filename string, data []byte) (string, error)
	Remove(path string) error
}

type UploadService struct {
	itemStore  ItemStore
	imageStore ImageStore
	listCache  ItemListCache
}

type UploadInput struct {
	FileData []byte
	FileName string
	ItemID   uint
	UserID   uint
}

type UploadResult struct {
	Item *model.ClothingItem
	// ImageData is the stored file re-encoded base64 for transport.
	ImageData string
}

func NewUploadService(itemStore ItemStore, imageStore ImageStore, listCache ItemListCache) *UploadService {
	return &UploadService{
		itemStore:  itemStore,
		imageStore: imageStore,
		listCache:  listCache,
	}
}

// UploadImage replaces the stored image for an item the caller owns. Exactly
// one file remains on disk afterwards; a database failure removes the freshly
// written file again.
func (s *UploadService) UploadImage(input UploadInput) (*UploadResult, error) {
	if input.ItemID == 0 || input.UserID == 0 || len(input.FileData) == 0 {
		return nil, ErrInvalidInput
	}

	ext := filepath.Ext(input.FileName)
	if ext == "" {
		return nil, ErrInvalidInput
	}

	item, err := s.itemStore.GetByIDAndUserID(input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	oldPath := item.ImagePath
	filename := fmt.Sprintf("%d_%d_%s%s",
		input.UserID,
		input.ItemID,
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		ext,
	)

	if err := s.imageStore.Remove(oldPath); err != nil {
		return nil, ErrUploadFailed
	}

	newPath, err := s.imageStore.Save(filename, input.FileData)
	if err != nil {
		return nil, ErrUploadFailed
	}

	item.ImagePath = newPath
	item.UpdatedAt = time.Now()
	if err := s.itemStore.Save(item); err != nil {
		// Keep disk and row consistent when the row update does not land.
		_ = s.imageStore.Remove(newPath)
		return nil, ErrUploadFailed
	}

	s.invalidateListing(input.UserID)
	return &UploadResult{
		Item:      item,
		ImageData: base64.StdEncoding.EncodeToString(input.FileData),
	}, nil
}

func (s *UploadService) DeleteImage(itemID, userID uint) error {
	if itemID == 0 || userID == 0 {
		return ErrInvalidInput
	}

	item, err := s.itemStore.GetByIDAndUserID(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if item.ImagePath == "" {
		return ErrNoImage
	}

	path := item.ImagePath
	item.ImagePath = ""
	item.UpdatedAt = time.Now()
	if err := s.itemStore.Save(item); err != nil {
		return ErrUploadFailed
	}
	if err := s.imageStore.Remove(path); err != nil {
		return ErrUploadFailed
	}

	s.invalidateListing(userID)
	return nil
}

func (s *UploadService) invalidateListing(userID uint) {
	if s.listCache == nil {
		return
	}
	ctx := context.Background()
	_ = s.listCache.MarkDirty(ctx, userID)
	_ = s.listCache.DeleteItems(ctx, userID)
}

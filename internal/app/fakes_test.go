package app

import (
	"time"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type fakeItemStore struct {
	items   map[uint]*model.ClothingItem
	nextID  uint
	saveErr error
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: map[uint]*model.ClothingItem{}, nextID: 1}
}

func (f *fakeItemStore) Create(item *model.ClothingItem) error {
	item.ID = f.nextID
	f.nextID++
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemStore) GetByIDAndUserID(itemID, userID uint) (*model.ClothingItem, error) {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemStore) ListByUserID(userID uint) ([]model.ClothingItem, error) {
	var out []model.ClothingItem
	for id := uint(1); id < f.nextID; id++ {
		if item, ok := f.items[id]; ok && item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemStore) Save(item *model.ClothingItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemStore) DeleteByIDAndUserID(itemID, userID uint) (bool, error) {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID {
		return false, nil
	}
	delete(f.items, itemID)
	return true, nil
}

type fakeOutfitStore struct {
	outfits map[uint]*model.Outfit
	nextID  uint
}

func newFakeOutfitStore() *fakeOutfitStore {
	return &fakeOutfitStore{outfits: map[uint]*model.Outfit{}, nextID: 1}
}

func (f *fakeOutfitStore) Create(outfit *model.Outfit) error {
	outfit.ID = f.nextID
	f.nextID++
	now := time.Now()
	outfit.CreatedAt = now
	outfit.UpdatedAt = now
	copied := *outfit
	f.outfits[outfit.ID] = &copied
	return nil
}

func (f *fakeOutfitStore) GetByIDAndUserID(outfitID, userID uint) (*model.Outfit, error) {
	outfit, ok := f.outfits[outfitID]
	if !ok || outfit.UserID != userID {
		return nil, nil
	}
	copied := *outfit
	return &copied, nil
}

func (f *fakeOutfitStore) ListByUserID(userID uint) ([]model.Outfit, error) {
	var out []model.Outfit
	for id := uint(1); id < f.nextID; id++ {
		if outfit, ok := f.outfits[id]; ok && outfit.UserID == userID {
			out = append(out, *outfit)
		}
	}
	return out, nil
}

func (f *fakeOutfitStore) Save(outfit *model.Outfit) error {
	copied := *outfit
	f.outfits[outfit.ID] = &copied
	return nil
}

func (f *fakeOutfitStore) DeleteByIDAndUserID(outfitID, userID uint) (bool, error) {
	outfit, ok := f.outfits[outfitID]
	if !ok || outfit.UserID != userID {
		return false, nil
	}
	delete(f.outfits, outfitID)
	return true, nil
}

type fakeCollectionStore struct {
	collections map[uint]*model.Collection
	nextID      uint
}

func newFakeCollectionStore() *fakeCollectionStore {
	return &fakeCollectionStore{collections: map[uint]*model.Collection{}, nextID: 1}
}

func (f *fakeCollectionStore) Create(collection *model.Collection) error {
	collection.ID = f.nextID
	f.nextID++
	now := time.Now()
	collection.CreatedAt = now
	collection.UpdatedAt = now
	copied := *collection
	f.collections[collection.ID] = &copied
	return nil
}

func (f *fakeCollectionStore) GetByIDAndUserID(collectionID, userID uint) (*model.Collection, error) {
	collection, ok := f.collections[collectionID]
	if !ok || collection.UserID != userID {
		return nil, nil
	}
	copied := *collection
	return &copied, nil
}

func (f *fakeCollectionStore) ListByUserID(userID uint) ([]model.Collection, error) {
	var out []model.Collection
	for id := uint(1); id < f.nextID; id++ {
		if collection, ok := f.collections[id]; ok && collection.UserID == userID {
			out = append(out, *collection)
		}
	}
	return out, nil
}

func (f *fakeCollectionStore) Save(collection *model.Collection) error {
	copied := *collection
	f.collections[collection.ID] = &copied
	return nil
}

func (f *fakeCollectionStore) DeleteByIDAndUserID(collectionID, userID uint) (bool, error) {
	collection, ok := f.collections[collectionID]
	if !ok || collection.UserID != userID {
		return false, nil
	}
	delete(f.collections, collectionID)
	return true, nil
}

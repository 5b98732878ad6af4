package services

import (
	"context"
	"errors"
	"time"

	"stocktrack/internal/models"
	"stocktrack/internal/repositories"
)

// CreateItemRequest is the POST /new_item payload.
type CreateItemRequest struct {
	ExpirationDate models.Date `json:"expiration_date" validate:"required"`
	ItemTypeID     int64       `json:"item_type_id" validate:"required"`
	LocationID     int64       `json:"location_id" validate:"required"`
}

// PatchItemRequest is the PATCH /id_item/:id payload. Absent or empty fields
// are left unchanged; created_at is never patchable.
type PatchItemRequest struct {
	ExpirationDate *models.Date `json:"expiration_date"`
	ItemTypeID     *int64       `json:"item_type_id"`
	LocationID     *int64       `json:"location_id"`
}

type ItemService interface {
	Create(ctx context.Context, req CreateItemRequest) (*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Delete(ctx context.Context, id int64) (*models.Item, error)
	Patch(ctx context.Context, id int64, req PatchItemRequest) error
}

type itemService struct {
	items     repositories.ItemRepository
	itemTypes repositories.ItemTypeRepository
	locations repositories.LocationRepository
	now       func() time.Time
}

func NewItemService(items repositories.ItemRepository, itemTypes repositories.ItemTypeRepository, locations repositories.LocationRepository) ItemService {
	return &itemService{
		items:     items,
		itemTypes: itemTypes,
		locations: locations,
		now:       time.Now,
	}
}

// Create verifies both foreign keys, item type first, before inserting.
// CreatedAt is assigned here so the response can echo it without a re-read.
func (s *itemService) Create(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	if err := s.checkItemType(ctx, req.ItemTypeID); err != nil {
		return nil, err
	}
	if err := s.checkLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}
	item := &models.Item{
		CreatedAt:      s.now().UTC(),
		ExpirationDate: req.ExpirationDate,
		ItemTypeID:     req.ItemTypeID,
		LocationID:     req.LocationID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: "Item", ID: id}
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Patch(ctx context.Context, id int64, req PatchItemRequest) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.ExpirationDate != nil && !req.ExpirationDate.IsZero() {
		item.ExpirationDate = *req.ExpirationDate
	}
	if req.ItemTypeID != nil && *req.ItemTypeID != 0 {
		if err := s.checkItemType(ctx, *req.ItemTypeID); err != nil {
			return err
		}
		item.ItemTypeID = *req.ItemTypeID
	}
	if req.LocationID != nil && *req.LocationID != 0 {
		if err := s.checkLocation(ctx, *req.LocationID); err != nil {
			return err
		}
		item.LocationID = *req.LocationID
	}
	return s.items.Update(ctx, item)
}

func (s *itemService) checkItemType(ctx context.Context, itemTypeID int64) error {
	ok, err := s.itemTypes.Exists(ctx, itemTypeID)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: "item_type_id", ID: itemTypeID}
	}
	return nil
}

func (s *itemService) checkLocation(ctx context.Context, locationID int64) error {
	ok, err := s.locations.Exists(ctx, locationID)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: "location_id", ID: locationID}
	}
	return nil
}

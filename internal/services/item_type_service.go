package services

import (
	"context"
	"errors"

	"stocktrack/internal/models"
	"stocktrack/internal/repositories"
)

// CreateItemTypeRequest is the POST /new_item_type payload.
type CreateItemTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	BrandID     int64  `json:"brand_id" validate:"required"`
}

// PatchItemTypeRequest is the PATCH /id_item_type/:id payload. Absent or
// empty fields are left unchanged; a brand_id of 0 counts as empty.
type PatchItemTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BrandID     *int64  `json:"brand_id"`
}

type ItemTypeService interface {
	Create(ctx context.Context, req CreateItemTypeRequest) (*models.ItemType, error)
	Get(ctx context.Context, id int64) (*models.ItemType, error)
	Delete(ctx context.Context, id int64) (*models.ItemType, error)
	Patch(ctx context.Context, id int64, req PatchItemTypeRequest) error
	ListWithBrand(ctx context.Context) ([]*models.ItemTypeWithBrand, error)
}

type itemTypeService struct {
	itemTypes repositories.ItemTypeRepository
	brands    repositories.BrandRepository
}

func NewItemTypeService(itemTypes repositories.ItemTypeRepository, brands repositories.BrandRepository) ItemTypeService {
	return &itemTypeService{
		itemTypes: itemTypes,
		brands:    brands,
	}
}

// Create verifies the referenced brand before inserting, so a dangling
// brand_id is a 404-shaped miss rather than a constraint violation.
func (s *itemTypeService) Create(ctx context.Context, req CreateItemTypeRequest) (*models.ItemType, error) {
	if err := s.checkBrand(ctx, req.BrandID); err != nil {
		return nil, err
	}
	itemType := &models.ItemType{
		Name:        req.Name,
		Description: req.Description,
		BrandID:     req.BrandID,
	}
	if err := s.itemTypes.Create(ctx, itemType); err != nil {
		return nil, err
	}
	return itemType, nil
}

func (s *itemTypeService) Get(ctx context.Context, id int64) (*models.ItemType, error) {
	itemType, err := s.itemTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: "ItemType", ID: id}
		}
		return nil, err
	}
	return itemType, nil
}

func (s *itemTypeService) Delete(ctx context.Context, id int64) (*models.ItemType, error) {
	itemType, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.itemTypes.Delete(ctx, id); err != nil {
		return nil, err
	}
	return itemType, nil
}

func (s *itemTypeService) Patch(ctx context.Context, id int64, req PatchItemTypeRequest) error {
	itemType, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil && *req.Name != "" {
		itemType.Name = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		itemType.Description = *req.Description
	}
	if req.BrandID != nil && *req.BrandID != 0 {
		if err := s.checkBrand(ctx, *req.BrandID); err != nil {
			return err
		}
		itemType.BrandID = *req.BrandID
	}
	return s.itemTypes.Update(ctx, itemType)
}

func (s *itemTypeService) ListWithBrand(ctx context.Context) ([]*models.ItemTypeWithBrand, error) {
	return s.itemTypes.ListWithBrand(ctx)
}

func (s *itemTypeService) checkBrand(ctx context.Context, brandID int64) error {
	ok, err := s.brands.Exists(ctx, brandID)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: "brand_id", ID: brandID}
	}
	return nil
}

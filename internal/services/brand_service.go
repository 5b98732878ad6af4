package services

import (
	"context"
	"errors"

	"stocktrack/internal/models"
	"stocktrack/internal/repositories"
)

// CreateBrandRequest is the POST /new_brand payload.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required"`
}

// PatchBrandRequest is the PATCH /id_brand/:id payload. A field that is
// absent, or present but empty, is left unchanged.
type PatchBrandRequest struct {
	Name *string `json:"name"`
}

type BrandService interface {
	Create(ctx context.Context, req CreateBrandRequest) (*models.Brand, error)
	Get(ctx context.Context, id int64) (*models.Brand, error)
	Delete(ctx context.Context, id int64) (*models.Brand, error)
	Patch(ctx context.Context, id int64, req PatchBrandRequest) error
}

type brandService struct {
	brands repositories.BrandRepository
}

func NewBrandService(brands repositories.BrandRepository) BrandService {
	return &brandService{brands: brands}
}

func (s *brandService) Create(ctx context.Context, req CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{Name: req.Name}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Get(ctx context.Context, id int64) (*models.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: "Brand", ID: id}
		}
		return nil, err
	}
	return brand, nil
}

// Delete returns the snapshot of what was removed. A brand still referenced
// by item types is protected by the RESTRICT foreign key and comes back as a
// constraint violation.
func (s *brandService) Delete(ctx context.Context, id int64) (*models.Brand, error) {
	brand, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.brands.Delete(ctx, id); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Patch(ctx context.Context, id int64, req PatchBrandRequest) error {
	brand, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil && *req.Name != "" {
		brand.Name = *req.Name
	}
	return s.brands.Update(ctx, brand)
}

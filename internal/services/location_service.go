package services

import (
	"context"
	"errors"

	"stocktrack/internal/models"
	"stocktrack/internal/repositories"
)

// CreateLocationRequest is the POST /new_location payload. Address and city
// are required in the current schema revision.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// PatchLocationRequest is the PATCH /id_location/:id payload. Absent or
// empty fields are left unchanged.
type PatchLocationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

type LocationService interface {
	Create(ctx context.Context, req CreateLocationRequest) (*models.Location, error)
	Get(ctx context.Context, id int64) (*models.Location, error)
	Delete(ctx context.Context, id int64) (*models.Location, error)
	Patch(ctx context.Context, id int64, req PatchLocationRequest) error
}

type locationService struct {
	locations repositories.LocationRepository
}

func NewLocationService(locations repositories.LocationRepository) LocationService {
	return &locationService{locations: locations}
}

func (s *locationService) Create(ctx context.Context, req CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Get(ctx context.Context, id int64) (*models.Location, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: "Location", ID: id}
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id int64) (*models.Location, error) {
	location, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.locations.Delete(ctx, id); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Patch(ctx context.Context, id int64, req PatchLocationRequest) error {
	location, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil && *req.Name != "" {
		location.Name = *req.Name
	}
	if req.Address != nil && *req.Address != "" {
		location.Address = *req.Address
	}
	if req.City != nil && *req.City != "" {
		location.City = *req.City
	}
	return s.locations.Update(ctx, location)
}

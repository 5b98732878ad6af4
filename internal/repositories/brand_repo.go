package repositories

import (
	"context"

	"stocktrack/internal/models"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type brandRepo struct {
	db DB
}

func NewBrandRepository(db DB) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) Create(ctx context.Context, brand *models.Brand) error {
	query := `
		INSERT INTO brands (name)
		VALUES ($1)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, brand.Name).Scan(&brand.ID); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *brandRepo) GetByID(ctx context.Context, id int64) (*models.Brand, error) {
	brand := &models.Brand{}
	query := `
		SELECT id, name
		FROM brands
		WHERE id = $1
	`
	if err := r.db.QueryRow(ctx, query, id).Scan(&brand.ID, &brand.Name); err != nil {
		return nil, translateError(err)
	}
	return brand, nil
}

func (r *brandRepo) Update(ctx context.Context, brand *models.Brand) error {
	query := `
		UPDATE brands
		SET name = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, brand.Name, brand.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *brandRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *brandRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, translateError(err)
	}
	return exists, nil
}

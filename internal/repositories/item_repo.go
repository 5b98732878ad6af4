package repositories

import (
	"context"

	"stocktrack/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db DB
}

func NewItemRepository(db DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (created_at, expiration_date, item_type_id, location_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, item.CreatedAt, item.ExpirationDate.Time, item.ItemTypeID, item.LocationID).Scan(&item.ID); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{}
	query := `
		SELECT id, created_at, expiration_date, item_type_id, location_id
		FROM items
		WHERE id = $1
	`
	if err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.CreatedAt, &item.ExpirationDate.Time, &item.ItemTypeID, &item.LocationID); err != nil {
		return nil, translateError(err)
	}
	return item, nil
}

// Update never touches created_at; it is immutable after creation.
func (r *itemRepo) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET expiration_date = $1, item_type_id = $2, location_id = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, item.ExpirationDate.Time, item.ItemTypeID, item.LocationID, item.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

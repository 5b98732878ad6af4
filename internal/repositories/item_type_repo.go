package repositories

import (
	"context"

	"stocktrack/internal/models"
)

type ItemTypeRepository interface {
	Create(ctx context.Context, itemType *models.ItemType) error
	GetByID(ctx context.Context, id int64) (*models.ItemType, error)
	Update(ctx context.Context, itemType *models.ItemType) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListWithBrand(ctx context.Context) ([]*models.ItemTypeWithBrand, error)
}

type itemTypeRepo struct {
	db DB
}

func NewItemTypeRepository(db DB) ItemTypeRepository {
	return &itemTypeRepo{db: db}
}

func (r *itemTypeRepo) Create(ctx context.Context, itemType *models.ItemType) error {
	query := `
		INSERT INTO item_types (name, description, brand_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, itemType.Name, itemType.Description, itemType.BrandID).Scan(&itemType.ID); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *itemTypeRepo) GetByID(ctx context.Context, id int64) (*models.ItemType, error) {
	itemType := &models.ItemType{}
	query := `
		SELECT id, name, description, brand_id
		FROM item_types
		WHERE id = $1
	`
	if err := r.db.QueryRow(ctx, query, id).Scan(&itemType.ID, &itemType.Name, &itemType.Description, &itemType.BrandID); err != nil {
		return nil, translateError(err)
	}
	return itemType, nil
}

func (r *itemTypeRepo) Update(ctx context.Context, itemType *models.ItemType) error {
	query := `
		UPDATE item_types
		SET name = $1, description = $2, brand_id = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, itemType.Name, itemType.Description, itemType.BrandID, itemType.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemTypeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM item_types WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemTypeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM item_types WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, translateError(err)
	}
	return exists, nil
}

// ListWithBrand returns every item type joined with its brand's name, ordered
// by item-type name ascending. Equal names keep insertion order via the id
// tie-break.
func (r *itemTypeRepo) ListWithBrand(ctx context.Context) ([]*models.ItemTypeWithBrand, error) {
	query := `
		SELECT it.id, it.name, it.description, it.brand_id, b.name AS brand_name
		FROM item_types it
		JOIN brands b ON b.id = it.brand_id
		ORDER BY it.name ASC, it.id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var itemTypes []*models.ItemTypeWithBrand
	for rows.Next() {
		row := &models.ItemTypeWithBrand{}
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.BrandID, &row.BrandName); err != nil {
			return nil, err
		}
		itemTypes = append(itemTypes, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return itemTypes, nil
}

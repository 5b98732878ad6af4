package models

// ItemType is a product definition under a brand. The (name, brand_id) pair
// is unique: the same product name may exist under different brands.
type ItemType struct {
	ID          int64  `json:"-" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	BrandID     int64  `json:"brand_id" db:"brand_id"`
}

// ItemTypeWithBrand is one row of the item-type/brand join, annotated with
// the owning brand's name.
type ItemTypeWithBrand struct {
	ItemType
	BrandName string `json:"brand_name" db:"brand_name"`
}

package models

import (
	"time"
)

// Item is a tracked instance of an ItemType stored at a Location.
// CreatedAt is assigned once by the server at creation and never changes.
type Item struct {
	ID             int64     `json:"-" db:"id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	ExpirationDate Date      `json:"expiration_date" db:"expiration_date"`
	ItemTypeID     int64     `json:"item_type_id" db:"item_type_id"`
	LocationID     int64     `json:"location_id" db:"location_id"`
}

package models

// Location is a physical storage location. Name and city are each unique on
// their own, and the (name, city) pair is unique as well.
type Location struct {
	ID      int64  `json:"-" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	City    string `json:"city" db:"city"`
}

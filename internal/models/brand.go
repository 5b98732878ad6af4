package models

// Brand is a manufacturer or label owning one or more item types.
// Brand names are globally unique.
type Brand struct {
	ID   int64  `json:"-" db:"id"`
	Name string `json:"name" db:"name"`
}

package services

import "fmt"

// NotFoundError reports a missing entity looked up by its own id. The message
// shape is part of the API contract ("Brand id 7 doesn't exists").
type NotFoundError struct {
	Kind string
	ID   any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s id %v doesn't exists", e.Kind, e.ID)
}

// ReferenceError reports a foreign-key field pointing at a missing row, named
// by the field ("brand_id 7 doesn't exists").
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %v doesn't exists", e.Field, e.ID)
}

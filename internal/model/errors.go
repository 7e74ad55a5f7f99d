package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("unique constraint violation")
)

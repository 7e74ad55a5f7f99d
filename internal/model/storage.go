package model

import (
	"context"
	"io"
)

// Storage is an object store for journal exports.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
}

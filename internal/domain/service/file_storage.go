package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// ErrFileNotFound is returned when no object exists under a key.
var ErrFileNotFound = errors.New("file not found")

// FileStorage persists binary objects by key.
type FileStorage interface {
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// NewWriter opens a streaming writer; the object is committed on Close.
	NewWriter(ctx context.Context, key, contentType string) (io.WriteCloser, error)

	// Open returns a reader for key and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

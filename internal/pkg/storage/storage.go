package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores a file and returns its storage path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file, a missing file is not an error
	Delete(ctx context.Context, path string) error

	// URL returns the public URL of a stored path
	URL(path string) string
}

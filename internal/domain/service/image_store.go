package service

import (
	"context"
)

// ImageFile is the content of a served image.
type ImageFile struct {
	Key         string
	Data        []byte
	ContentType string
}

// ImageStore reads image bytes for a validated relative path.
type ImageStore interface {
	// Resolve validates a caller-supplied relative path and returns the store key.
	// Unsafe paths yield domainerrors.ErrInvalidPath.
	Resolve(rawPath string) (string, error)

	// Read returns the bytes and inferred content type of the image stored under key.
	// Missing images yield domainerrors.ErrImageNotFound.
	Read(ctx context.Context, key string) (*ImageFile, error)

	// Close releases the underlying bucket.
	Close() error
}

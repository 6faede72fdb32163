package storage

import (
	"context"
)

// StorageService archives raw scraped pages.
type StorageService interface {
	// Upload uploads an object and returns its storage URL
	Upload(ctx context.Context, bucket, objectName string, content []byte, contentType string) (string, error)

	// Download downloads an object from storage
	Download(ctx context.Context, bucket, objectName string) ([]byte, error)

	// Delete deletes an object from storage
	Delete(ctx context.Context, bucket, objectName string) error
}

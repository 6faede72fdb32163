package storage

import (
	"context"
	"errors"
)

// NoopStorage discards uploads. Used when no bucket is configured so the
// ingestion client can treat archiving as unconditionally available.
type NoopStorage struct{}

func NewNoopStorage() StorageService {
	return NoopStorage{}
}

func (NoopStorage) Upload(ctx context.Context, bucket, objectName string, content []byte, contentType string) (string, error) {
	return "", nil
}

func (NoopStorage) Download(ctx context.Context, bucket, objectName string) ([]byte, error) {
	return nil, errors.New("snapshot storage not configured")
}

func (NoopStorage) Delete(ctx context.Context, bucket, objectName string) error {
	return nil
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/jobportal/job-portal-service/common/config"
	"google.golang.org/api/option"
)

// GCSStorage implements the StorageService interface for Google Cloud Storage
type GCSStorage struct {
	client *storage.Client
	config config.GCSConfig
}

// NewGCSStorage creates a new GCS storage service
func NewGCSStorage(ctx context.Context, cfg config.GCSConfig) (StorageService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	storageClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSStorage{
		config: cfg,
		client: storageClient,
	}, nil
}

// Upload uploads an object to GCS and returns its gs:// URL
func (g *GCSStorage) Upload(ctx context.Context, bucket, objectName string, content []byte, contentType string) (string, error) {
	wc := g.client.Bucket(bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, bytes.NewReader(content)); err != nil {
		return "", fmt.Errorf("failed to write object %s to bucket %s: %w", objectName, bucket, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s in bucket %s: %w", objectName, bucket, err)
	}

	return fmt.Sprintf("gs://%s/%s", bucket, objectName), nil
}

// Download downloads an object from GCS
func (g *GCSStorage) Download(ctx context.Context, bucket, objectName string) ([]byte, error) {
	rc, err := g.client.Bucket(bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for object %s in bucket %s: %w", objectName, bucket, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read data for object %s in bucket %s: %w", objectName, bucket, err)
	}
	return data, nil
}

// Delete deletes an object from GCS
func (g *GCSStorage) Delete(ctx context.Context, bucket, objectName string) error {
	if err := g.client.Bucket(bucket).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s from bucket %s: %w", objectName, bucket, err)
	}
	return nil
}

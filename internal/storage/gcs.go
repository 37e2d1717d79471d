package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSStore uploads objects to a Google Cloud Storage bucket and resolves
// them through the public storage.googleapis.com endpoint. The bucket is
// expected to allow public reads for uploaded images.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket name is required")
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: write %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: commit %s: %w", objectPath, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath), nil
}

func (s *GCSStore) Close() error { return s.client.Close() }

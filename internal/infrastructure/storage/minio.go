package storage

import (
	"context"
	"fmt"
	"io"

	"dermatriagem-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStore stores consent documents and lesion photos.
type ObjectStore interface {
	// PutObject uploads the content and returns the stored path "<bucket>/<object>".
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// Client returns the MinIO client, or nil when no backend is reachable.
	Client() *minio.Client
}

type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinioStore{client: client, bucket: cfg.Bucket}
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}

	logrus.WithField("bucket", cfg.Bucket).Info("Successfully connected to MinIO")

	return store, nil
}

// Open connects to MinIO. When the endpoint or the bucket cannot be reached
// it logs a warning and returns a store whose uploads always fail, so callers
// fall back to placeholder paths instead of aborting.
func Open(ctx context.Context, cfg config.StorageConfig, log *logrus.Logger) ObjectStore {
	store, err := NewMinioStore(ctx, cfg)
	if err != nil {
		log.WithField("endpoint", cfg.Endpoint).Warnf("Object store unavailable, uploads will use fallback paths: %+v", err)
		return &unavailableStore{err: err}
	}
	return store
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStore) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return fmt.Sprintf("%s/%s", info.Bucket, info.Key), nil
}

// Client exposes the underlying MinIO client.
func (s *MinioStore) Client() *minio.Client {
	return s.client
}

type unavailableStore struct {
	err error
}

func (s *unavailableStore) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return "", fmt.Errorf("failed to upload %s: %w", objectName, s.err)
}

func (s *unavailableStore) Client() *minio.Client {
	return nil
}

package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStorage uploads photo blobs to an S3-compatible bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *zap.Logger) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client for %s: %w", endpoint, err)
	}

	if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(context.Background(), bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("making bucket %s: %w", bucket, err)
		}
	}

	logger.Info("object storage ready", zap.String("endpoint", endpoint), zap.String("bucket", bucket))

	return &MinioStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Upload writes data under key and returns the object's public URL.
func (s *MinioStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading object %s to bucket %s: %w", key, s.bucket, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key)
	s.logger.Info("photo uploaded", zap.String("key", key), zap.String("url", url), zap.Int("size_bytes", len(data)))
	return url, nil
}

package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

const presignExpiry = 1 * time.Hour

// PhotoStorage stores motel photos in a MinIO/S3 bucket. The object key is
// the opaque reference persisted on the motel record.
type PhotoStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

func NewPhotoStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool, log *logger.Logger) (*PhotoStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucketName)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucketName, err, errBucketExists)
		}
	}
	log.Info("PhotoStorage: bucket ready", "endpoint", endpoint, "bucket", bucketName, "use_ssl", useSSL)

	return &PhotoStorage{
		client: client,
		bucket: bucketName,
		logger: log,
	}, nil
}

// Put uploads the bytes under a fresh key, keeping the original extension,
// and returns the key as the photo reference.
func (s *PhotoStorage) Put(ctx context.Context, originalFileName string, data []byte) (domain.PhotoRef, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		s.logger.Error("PhotoStorage.Put: PutObject failed", "bucket", s.bucket, "key", objectKey, "error", err.Error())
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	s.logger.Info("PhotoStorage.Put: uploaded", "bucket", s.bucket, "key", objectKey, "size_bytes", len(data))
	return domain.PhotoRef(objectKey), nil
}

// URL resolves a reference into a time-limited fetch URL for rendering.
func (s *PhotoStorage) URL(ctx context.Context, ref domain.PhotoRef) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, string(ref), presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", ref, err)
	}
	return u.String(), nil
}

// Remove releases the blob. S3 deletes are idempotent, so removing an
// already-absent reference succeeds and retried motel deletes converge.
func (s *PhotoStorage) Remove(ctx context.Context, ref domain.PhotoRef) error {
	err := s.client.RemoveObject(ctx, s.bucket, string(ref), minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.Error("PhotoStorage.Remove: RemoveObject failed", "bucket", s.bucket, "key", string(ref), "error", err.Error())
		return fmt.Errorf("failed to remove object %s from bucket %s: %w", ref, s.bucket, err)
	}
	return nil
}

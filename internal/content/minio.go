package content

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/docshelf/docshelf/internal/common"
)

type minioStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, common.WrapError(err, "connect to object store")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, common.WrapError(err, "check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, common.WrapError(err, "create bucket")
		}
		logger.Info("storage.bucket.created", "bucket", cfg.Bucket)
	}

	return &minioStore{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *minioStore) Store(ctx context.Context, r io.Reader, filename string) (string, error) {
	contentID := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	_, err := s.client.PutObject(ctx, s.bucket, contentID, r, -1, minio.PutObjectOptions{})
	if err != nil {
		return "", common.WrapError(err, "store content")
	}
	s.logger.Debug("storage.content.stored", "content_id", contentID, "filename", filename)
	return contentID, nil
}

func (s *minioStore) Get(ctx context.Context, contentID string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, contentID, minio.GetObjectOptions{})
	if err != nil {
		return nil, common.WrapError(err, "get content")
	}
	// GetObject is lazy; surface missing objects now rather than on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, common.WrapError(err, "stat content")
	}
	return obj, nil
}

func (s *minioStore) Size(ctx context.Context, contentID string) (int64, error) {
	info, err := s.client.StatObject(ctx, s.bucket, contentID, minio.StatObjectOptions{})
	if err != nil {
		return 0, common.WrapError(err, "stat content")
	}
	return info.Size, nil
}

func (s *minioStore) DetectMimeType(ctx context.Context, contentID, filename string) (string, error) {
	rc, err := s.Get(ctx, contentID)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	mt, err := mimetype.DetectReader(rc)
	if err != nil {
		return "", common.WrapError(err, "detect mime type")
	}

	detected := mt.String()
	if detected == "application/octet-stream" {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
			detected = byExt
		}
	}
	return strings.ToLower(strings.TrimSpace(detected)), nil
}

func (s *minioStore) Delete(ctx context.Context, contentID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, contentID, minio.RemoveObjectOptions{}); err != nil {
		return common.WrapError(err, "delete content")
	}
	s.logger.Info("storage.content.deleted", "content_id", contentID)
	return nil
}

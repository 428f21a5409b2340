package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxProfilePictureSize = 5 * 1024 * 1024 // 5 MB
	presignedURLTTL       = 15 * time.Minute
	profilePathPrefix     = "profile-pictures"
)

var (
	ErrFileTooBig      = errors.New("file size exceeds 5MB limit")
	ErrInvalidFileType = errors.New("invalid file type, only JPEG and PNG images are allowed")
	ErrUploadFailed    = errors.New("failed to upload file")
	ErrDeleteFailed    = errors.New("failed to delete file")

	allowedImageTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
	}
)

// ProfilePictureStorage is the object-storage collaborator for user profile
// pictures. The entity store keeps only the object key.
type ProfilePictureStorage interface {
	Upload(ctx context.Context, userCode string, file io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectKey string) error
	URL(ctx context.Context, objectKey string) (string, error)
}

// MinIOProfilePictureStorage stores profile pictures in an S3-compatible
// bucket. Bucket creation is deferred to first use so a cold object store
// does not block startup.
type MinIOProfilePictureStorage struct {
	client     *minio.Client
	bucketName string
	initOnce   sync.Once
	initErr    error
}

func NewMinIOProfilePictureStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOProfilePictureStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOProfilePictureStorage{client: client, bucketName: bucketName}, nil
}

func (s *MinIOProfilePictureStorage) lazyInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = fmt.Errorf("check bucket: %w", err)
			return
		}
		if !exists {
			if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
				s.initErr = fmt.Errorf("create bucket: %w", err)
			}
		}
	})
	return s.initErr
}

func (s *MinIOProfilePictureStorage) Upload(ctx context.Context, userCode string, file io.Reader, size int64, contentType string) (string, error) {
	if size > maxProfilePictureSize {
		return "", ErrFileTooBig
	}
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", ErrInvalidFileType
	}
	if err := s.lazyInit(ctx); err != nil {
		return "", err
	}
	ext := "jpg"
	if contentType == "image/png" {
		ext = "png"
	}
	objectKey := fmt.Sprintf("%s/%s/%s.%s", profilePathPrefix, userCode, uuid.NewString(), ext)
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return objectKey, nil
}

func (s *MinIOProfilePictureStorage) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" || !strings.HasPrefix(objectKey, profilePathPrefix+"/") {
		return nil
	}
	if err := s.lazyInit(ctx); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func (s *MinIOProfilePictureStorage) URL(ctx context.Context, objectKey string) (string, error) {
	if err := s.lazyInit(ctx); err != nil {
		return "", err
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, presignedURLTTL, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

package oss

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

const (
	videoBucket   = "video"
	pictureBucket = "picture"
	fileBucket    = "files"
	bucketRegion  = "us-east-1" // MinIO默认区域
)

type MinioStorage struct {
	client    *minio.Client
	publicUrl string
}

func NewMinioStorage(client *minio.Client, publicUrl string) *MinioStorage {
	return &MinioStorage{client: client, publicUrl: publicUrl}
}

// bucketFor 根据对象前缀选择桶 videos/covers/avatars分开存放
func bucketFor(objectName string) string {
	switch {
	case strings.HasPrefix(objectName, "videos/"):
		return videoBucket
	case strings.HasPrefix(objectName, "covers/"), strings.HasPrefix(objectName, "avatars/"):
		return pictureBucket
	default:
		return fileBucket
	}
}

func (s *MinioStorage) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: bucketRegion})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucketName := bucketFor(objectName)
	if err := s.ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, bucketName, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object error: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicUrl, bucketName, objectName), nil
}

func (s *MinioStorage) Download(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucketFor(objectName), objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object error: %w", err)
	}
	return obj, nil
}

func (s *MinioStorage) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, bucketFor(objectName), objectName, minio.RemoveObjectOptions{})
}

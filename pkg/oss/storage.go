package oss

import (
	"context"
	"io"
)

// Storage 对象存储抽象 支持minio与本地磁盘两种后端
type Storage interface {
	// Upload 上传对象 返回可访问URL
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	// Download 读取对象内容
	Download(ctx context.Context, objectName string) (io.ReadCloser, error)
	Delete(ctx context.Context, objectName string) error
}

package oss

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage 本地磁盘存储 用于开发环境与无对象存储的小规模部署
type LocalStorage struct {
	baseDir string
	baseUrl string
}

func NewLocalStorage(baseDir, baseUrl string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, baseUrl: baseUrl}
}

// safePath 拒绝路径穿越
func (s *LocalStorage) safePath(objectName string) (string, error) {
	cleaned := filepath.Clean(objectName)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object name: %s", objectName)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}

func (s *LocalStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	path, err := s.safePath(objectName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("create dir error: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file error: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("write file error: %w", err)
	}

	return fmt.Sprintf("%s/files/%s", s.baseUrl, objectName), nil
}

func (s *LocalStorage) Download(ctx context.Context, objectName string) (io.ReadCloser, error) {
	path, err := s.safePath(objectName)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (s *LocalStorage) Delete(ctx context.Context, objectName string) error {
	path, err := s.safePath(objectName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package oss

import (
	"WorkTok.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var (
	minioClient    *minio.Client
	defaultStorage Storage
)

func Init() {
	cfg := config.ConfigInfo

	if cfg.Storage.Backend == "local" {
		defaultStorage = NewLocalStorage(cfg.Storage.LocalDir, cfg.Server.BaseUrl)
		logrus.Infof("storage backend: local dir=%s", cfg.Storage.LocalDir)
		return
	}

	var err error
	minioClient, err = minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(err)
	}
	defaultStorage = NewMinioStorage(minioClient, cfg.Minio.PublicUrl)
	logrus.Infof("storage backend: minio endpoint=%s", cfg.Minio.Endpoint)
}

// GetStorage 返回已初始化的存储后端
func GetStorage() Storage {
	return defaultStorage
}

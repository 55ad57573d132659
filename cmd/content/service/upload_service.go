package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"WorkTok.com/config"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/oss"
	"WorkTok.com/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var allowedVideoExts = map[string]bool{"mp4": true, "mov": true, "avi": true, "webm": true}
var allowedImageExts = map[string]bool{"jpg": true, "jpeg": true, "png": true, "webp": true}

type UploadService struct {
	ctx context.Context
}

func NewUploadService(ctx context.Context) *UploadService {
	return &UploadService{ctx: ctx}
}

type UploadResult struct {
	VideoUrl string `json:"video_url"`
	CoverUrl string `json:"cover_url"`
	Duration int    `json:"duration"`
	FileSize int64  `json:"file_size"`
}

// UploadVideo 校验大小与扩展名 取时长并截首帧作默认封面
func (service *UploadService) UploadVideo(file *multipart.FileHeader) (*UploadResult, error) {
	ext := utils.FileExt(file.Filename)
	if !allowedVideoExts[ext] {
		return nil, errno.RequestErr.WithMessage("unsupported video format: " + ext)
	}
	maxSize := config.ConfigInfo.Upload.MaxVideoSizeMB * 1024 * 1024
	if file.Size > maxSize {
		return nil, errno.RequestErr.WithMessage(
			fmt.Sprintf("video exceeds %dMB limit", config.ConfigInfo.Upload.MaxVideoSizeMB))
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload failed,err: %v", err)
	}
	defer src.Close()

	// ffprobe只认本地路径 先落临时文件
	tmpDir, err := os.MkdirTemp("", "worktok-upload-*")
	if err != nil {
		return nil, errors.Wrapf(err, "mkdir temp failed,err: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, "source."+ext)
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return nil, errors.Wrapf(err, "create temp failed,err: %v", err)
	}
	if _, err := io.Copy(tmpFile, src); err != nil {
		tmpFile.Close()
		return nil, errors.Wrapf(err, "buffer upload failed,err: %v", err)
	}
	tmpFile.Close()

	duration, err := utils.GetVideoDuration(tmpPath)
	if err != nil {
		logrus.Warnf("probe duration failed: %v", err)
		duration = 0
	}

	objectName := fmt.Sprintf("videos/%s/%s.%s", time.Now().Format("20060102"), uuid.NewString(), ext)
	videoFile, err := os.Open(tmpPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reopen temp failed,err: %v", err)
	}
	defer videoFile.Close()
	videoUrl, err := oss.GetStorage().Upload(service.ctx, objectName, videoFile, file.Size, "video/"+ext)
	if err != nil {
		return nil, errno.StorageErr.WithMessage(err.Error())
	}

	result := &UploadResult{VideoUrl: videoUrl, Duration: duration, FileSize: file.Size}

	thumbPath, err := utils.GetVideoThumbnail(tmpPath, tmpDir)
	if err != nil {
		logrus.Warnf("extract thumbnail failed: %v", err)
		return result, nil
	}
	thumbFile, err := os.Open(thumbPath)
	if err != nil {
		logrus.Warnf("open thumbnail failed: %v", err)
		return result, nil
	}
	defer thumbFile.Close()
	thumbStat, err := thumbFile.Stat()
	if err != nil {
		logrus.Warnf("stat thumbnail failed: %v", err)
		return result, nil
	}
	coverName := fmt.Sprintf("covers/%s/%s.jpg", time.Now().Format("20060102"), uuid.NewString())
	coverUrl, err := oss.GetStorage().Upload(service.ctx, coverName, thumbFile, thumbStat.Size(), "image/jpeg")
	if err != nil {
		logrus.Warnf("upload thumbnail failed: %v", err)
		return result, nil
	}
	result.CoverUrl = coverUrl
	return result, nil
}

// UploadCover 上传自定义封面
func (service *UploadService) UploadCover(file *multipart.FileHeader) (string, error) {
	ext := utils.FileExt(file.Filename)
	if !allowedImageExts[ext] {
		return "", errno.RequestErr.WithMessage("unsupported image format: " + ext)
	}
	maxSize := config.ConfigInfo.Upload.MaxImageSizeMB * 1024 * 1024
	if file.Size > maxSize {
		return "", errno.RequestErr.WithMessage(
			fmt.Sprintf("image exceeds %dMB limit", config.ConfigInfo.Upload.MaxImageSizeMB))
	}
	src, err := file.Open()
	if err != nil {
		return "", errors.Wrapf(err, "open upload failed,err: %v", err)
	}
	defer src.Close()
	objectName := fmt.Sprintf("covers/%s/%s.%s", time.Now().Format("20060102"), uuid.NewString(), ext)
	url, err := oss.GetStorage().Upload(service.ctx, objectName, src, file.Size, "image/"+ext)
	if err != nil {
		return "", errno.StorageErr.WithMessage(err.Error())
	}
	return url, nil
}

// UploadAvatar 上传头像
func (service *UploadService) UploadAvatar(file *multipart.FileHeader) (string, error) {
	ext := utils.FileExt(file.Filename)
	if !allowedImageExts[ext] {
		return "", errno.RequestErr.WithMessage("unsupported image format: " + ext)
	}
	maxSize := config.ConfigInfo.Upload.MaxImageSizeMB * 1024 * 1024
	if file.Size > maxSize {
		return "", errno.RequestErr.WithMessage(
			fmt.Sprintf("image exceeds %dMB limit", config.ConfigInfo.Upload.MaxImageSizeMB))
	}
	src, err := file.Open()
	if err != nil {
		return "", errors.Wrapf(err, "open upload failed,err: %v", err)
	}
	defer src.Close()
	objectName := fmt.Sprintf("avatars/%s.%s", uuid.NewString(), ext)
	url, err := oss.GetStorage().Upload(service.ctx, objectName, src, file.Size, "image/"+ext)
	if err != nil {
		return "", errno.StorageErr.WithMessage(err.Error())
	}
	return url, nil
}

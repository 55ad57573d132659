package service

import (
	"context"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/download/dal/db"
	"WorkTok.com/cmd/model"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DownloadTTL 离线缓存有效期 到期由调度器标记过期
const DownloadTTL = 7 * 24 * time.Hour

type DownloadService struct {
	ctx context.Context
}

func NewDownloadService(ctx context.Context) *DownloadService {
	return &DownloadService{ctx: ctx}
}

type DownloadGrant struct {
	DownloadId string     `json:"download_id"`
	VideoUrl   string     `json:"video_url"`
	FileSize   int64      `json:"file_size"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// RequestDownload 登记下载并返回视频地址 企业内网直连存储 进度由客户端回报
func (service *DownloadService) RequestDownload(userId, contentId, quality string) (*DownloadGrant, error) {
	if quality == "" {
		quality = model.DownloadQualityHD
	}
	if quality != model.DownloadQualityHD && quality != model.DownloadQualitySD {
		return nil, errno.RequestErr.WithMessage("invalid quality")
	}
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}
	expiresAt := time.Now().Add(DownloadTTL)
	download := &model.Download{
		Id:        uuid.NewString(),
		UserId:    userId,
		ContentId: contentId,
		Status:    model.DownloadStatusPending,
		Quality:   quality,
		FileSize:  content.FileSize,
		ExpiresAt: &expiresAt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateDownload(service.ctx, download); err != nil {
		return nil, err
	}
	return &DownloadGrant{
		DownloadId: download.Id,
		VideoUrl:   content.VideoUrl,
		FileSize:   content.FileSize,
		ExpiresAt:  &expiresAt,
	}, nil
}

// nextDownloadStatus 进度满100置完成 失败优先
func nextDownloadStatus(progress float64, failed bool) string {
	if failed {
		return model.DownloadStatusFailed
	}
	if progress >= 100 {
		return model.DownloadStatusCompleted
	}
	return model.DownloadStatusDownloading
}

// UpdateProgress 客户端回报下载进度 满100自动置为已完成
func (service *DownloadService) UpdateProgress(userId, downloadId string, progress float64, failed bool) (*model.Download, error) {
	if progress < 0 || progress > 100 {
		return nil, errno.RequestErr.WithMessage("progress must be between 0 and 100")
	}
	download, err := db.QueryDownloadById(service.ctx, downloadId)
	if err != nil {
		return nil, err
	}
	if download == nil || download.UserId != userId {
		return nil, errno.RequestErr.WithMessage("download not found")
	}
	if download.Status == model.DownloadStatusExpired {
		return nil, errno.StatusConflictErr.WithMessage("download expired")
	}
	status := nextDownloadStatus(progress, failed)
	if err := db.UpdateDownloadProgress(service.ctx, downloadId, progress, status); err != nil {
		return nil, err
	}
	return db.QueryDownloadById(service.ctx, downloadId)
}

func (service *DownloadService) DeleteDownload(userId, downloadId string) error {
	affected, err := db.DeleteDownload(service.ctx, downloadId, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.RequestErr.WithMessage("download not found")
	}
	return nil
}

// ClearAll 清空用户全部离线缓存记录
func (service *DownloadService) ClearAll(userId string) (int64, error) {
	return db.DeleteDownloadsByUser(service.ctx, userId)
}

type StorageUsage struct {
	UsedBytes      int64 `json:"used_bytes"`
	CompletedCount int64 `json:"completed_count"`
}

func (service *DownloadService) GetStorageUsage(userId string) (*StorageUsage, error) {
	used, err := db.SumCompletedFileSize(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	count, err := db.CountCompletedDownloads(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	return &StorageUsage{UsedBytes: used, CompletedCount: count}, nil
}

func (service *DownloadService) ListDownloads(userId, status string, page, pageSize int64) ([]*model.Download, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListDownloadsByUser(service.ctx, userId, status, page, pageSize)
}

// ExpireStale 调度任务入口
func (service *DownloadService) ExpireStale() error {
	affected, err := db.ExpireDownloads(service.ctx, time.Now())
	if err != nil {
		return err
	}
	if affected > 0 {
		logrus.WithField("expired", affected).Info("downloads expired")
	}
	return nil
}

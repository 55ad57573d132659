package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateDownload(ctx context.Context, download *model.Download) error {
	if err := DB.WithContext(ctx).Create(download).Error; err != nil {
		return errors.Wrapf(err, "CreateDownload failed,err: %v", err)
	}
	return nil
}

func QueryDownloadById(ctx context.Context, downloadId string) (*model.Download, error) {
	var download model.Download
	if err := DB.WithContext(ctx).Model(&model.Download{}).Where("id = ?", downloadId).First(&download).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryDownloadById failed,err: %v", err)
	}
	return &download, nil
}

func UpdateDownloadStatus(ctx context.Context, downloadId, status string) error {
	if err := DB.WithContext(ctx).Model(&model.Download{}).Where("id = ?", downloadId).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error; err != nil {
		return errors.Wrapf(err, "UpdateDownloadStatus failed,err: %v", err)
	}
	return nil
}

// UpdateDownloadProgress 进度与状态一并更新 完成时落完成时间
func UpdateDownloadProgress(ctx context.Context, downloadId string, progress float64, status string) error {
	now := time.Now()
	updates := map[string]interface{}{"progress": progress, "updated_at": now}
	if status != "" {
		updates["status"] = status
	}
	if status == model.DownloadStatusCompleted {
		updates["completed_at"] = &now
	}
	if err := DB.WithContext(ctx).Model(&model.Download{}).Where("id = ?", downloadId).
		Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateDownloadProgress failed,err: %v", err)
	}
	return nil
}

func DeleteDownload(ctx context.Context, downloadId, userId string) (int64, error) {
	result := DB.WithContext(ctx).Where("id = ? AND user_id = ?", downloadId, userId).Delete(&model.Download{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteDownload failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

func DeleteDownloadsByUser(ctx context.Context, userId string) (int64, error) {
	result := DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Download{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteDownloadsByUser failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

// SumCompletedFileSize 已完成下载占用的存储量
func SumCompletedFileSize(ctx context.Context, userId string) (int64, error) {
	var total int64
	if err := DB.WithContext(ctx).Model(&model.Download{}).
		Where("user_id = ? AND status = ?", userId, model.DownloadStatusCompleted).
		Select("COALESCE(SUM(file_size), 0)").Scan(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "SumCompletedFileSize failed,err: %v", err)
	}
	return total, nil
}

func CountCompletedDownloads(ctx context.Context, userId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Download{}).
		Where("user_id = ? AND status = ?", userId, model.DownloadStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountCompletedDownloads failed,err: %v", err)
	}
	return count, nil
}

func ListDownloadsByUser(ctx context.Context, userId, status string, page, pageSize int64) ([]*model.Download, int64, error) {
	var downloads []*model.Download
	var total int64
	query := DB.WithContext(ctx).Model(&model.Download{}).Where("user_id = ?", userId)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListDownloadsByUser count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&downloads).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListDownloadsByUser failed,err: %v", err)
	}
	return downloads, total, nil
}

// ExpireDownloads 将到期的已完成下载标记为过期 返回受影响行数
func ExpireDownloads(ctx context.Context, now time.Time) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Download{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", model.DownloadStatusCompleted, now).
		Updates(map[string]interface{}{"status": model.DownloadStatusExpired, "updated_at": now})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "ExpireDownloads failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetProgress(ctx context.Context, userId, contentId string) (*model.PlaybackProgress, error) {
	var progress model.PlaybackProgress
	if err := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).
		Where("user_id = ? AND content_id = ?", userId, contentId).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetProgress failed,err: %v", err)
	}
	return &progress, nil
}

func SaveProgress(ctx context.Context, progress *model.PlaybackProgress) error {
	progress.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
		UpdateAll: true,
	}).Create(progress).Error; err != nil {
		return errors.Wrapf(err, "SaveProgress failed,err: %v", err)
	}
	return nil
}

// ListRecentlyWatched 观看历史 按最近播放排序
func ListRecentlyWatched(ctx context.Context, userId string, page, pageSize int64) ([]*model.PlaybackProgress, int64, error) {
	var list []*model.PlaybackProgress
	var total int64
	query := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListRecentlyWatched count failed,err: %v", err)
	}
	if err := query.Order("last_played_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&list).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListRecentlyWatched failed,err: %v", err)
	}
	return list, total, nil
}

// ListWatchedContentIds 用户看过的内容 用于推荐排除
func ListWatchedContentIds(ctx context.Context, userId string) ([]string, error) {
	var ids []string
	if err := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).Where("user_id = ?", userId).
		Pluck("content_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListWatchedContentIds failed,err: %v", err)
	}
	return ids, nil
}

// CountCompletedIn 统计给定内容集中用户已完成的数量
func CountCompletedIn(ctx context.Context, userId string, contentIds []string) (int64, error) {
	if len(contentIds) == 0 {
		return 0, nil
	}
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).
		Where("user_id = ? AND content_id IN ? AND is_completed = ?", userId, contentIds, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountCompletedIn failed,err: %v", err)
	}
	return count, nil
}

// ContentPlaybackAgg 单内容的播放聚合指标
type ContentPlaybackAgg struct {
	ContentId         string  `gorm:"column:content_id"`
	UniqueViewers     int64   `gorm:"column:unique_viewers"`
	Completions       int64   `gorm:"column:completions"`
	AvgCompletionRate float64 `gorm:"column:avg_completion_rate"`
	AvgWatchTimeSec   float64 `gorm:"column:avg_watch_time_sec"`
}

func AggregateByContent(ctx context.Context, contentIds []string) (map[string]*ContentPlaybackAgg, error) {
	if len(contentIds) == 0 {
		return map[string]*ContentPlaybackAgg{}, nil
	}
	var rows []*ContentPlaybackAgg
	if err := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).
		Select("content_id, COUNT(*) as unique_viewers, COALESCE(SUM(is_completed), 0) as completions, "+
			"COALESCE(AVG(completion_rate), 0) as avg_completion_rate, COALESCE(AVG(watch_time_sec), 0) as avg_watch_time_sec").
		Where("content_id IN ?", contentIds).Group("content_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "AggregateByContent failed,err: %v", err)
	}
	result := make(map[string]*ContentPlaybackAgg, len(rows))
	for _, row := range rows {
		result[row.ContentId] = row
	}
	return result, nil
}

// OverallPlaybackStats 全平台播放聚合 管理后台汇总用
func OverallPlaybackStats(ctx context.Context) (completions int64, avgCompletionRate float64, err error) {
	row := DB.WithContext(ctx).Model(&model.PlaybackProgress{}).
		Select("COALESCE(SUM(is_completed), 0), COALESCE(AVG(completion_rate), 0)").Row()
	if err := row.Scan(&completions, &avgCompletionRate); err != nil {
		return 0, 0, errors.Wrapf(err, "OverallPlaybackStats failed,err: %v", err)
	}
	return completions, avgCompletionRate, nil
}

func GetQualityPreference(ctx context.Context, userId string) (*model.VideoQualityPreference, error) {
	var pref model.VideoQualityPreference
	if err := DB.WithContext(ctx).Model(&model.VideoQualityPreference{}).Where("user_id = ?", userId).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetQualityPreference failed,err: %v", err)
	}
	return &pref, nil
}

func SaveQualityPreference(ctx context.Context, pref *model.VideoQualityPreference) error {
	pref.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(pref).Error; err != nil {
		return errors.Wrapf(err, "SaveQualityPreference failed,err: %v", err)
	}
	return nil
}

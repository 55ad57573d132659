package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetLearningAnalytics(ctx context.Context, userId string) (*model.LearningAnalytics, error) {
	var stats model.LearningAnalytics
	if err := DB.WithContext(ctx).Model(&model.LearningAnalytics{}).Where("user_id = ?", userId).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetLearningAnalytics failed,err: %v", err)
	}
	return &stats, nil
}

func SaveLearningAnalytics(ctx context.Context, stats *model.LearningAnalytics) error {
	stats.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(stats).Error; err != nil {
		return errors.Wrapf(err, "SaveLearningAnalytics failed,err: %v", err)
	}
	return nil
}

func GetDailyRecord(ctx context.Context, userId, day string) (*model.DailyLearningRecord, error) {
	var record model.DailyLearningRecord
	if err := DB.WithContext(ctx).Model(&model.DailyLearningRecord{}).
		Where("user_id = ? AND day = ?", userId, day).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetDailyRecord failed,err: %v", err)
	}
	return &record, nil
}

func SaveDailyRecord(ctx context.Context, record *model.DailyLearningRecord) error {
	record.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		UpdateAll: true,
	}).Create(record).Error; err != nil {
		return errors.Wrapf(err, "SaveDailyRecord failed,err: %v", err)
	}
	return nil
}

func ListDailyRecords(ctx context.Context, userId string, fromDay, toDay string) ([]*model.DailyLearningRecord, error) {
	var records []*model.DailyLearningRecord
	if err := DB.WithContext(ctx).Model(&model.DailyLearningRecord{}).
		Where("user_id = ? AND day >= ? AND day <= ?", userId, fromDay, toDay).
		Order("day ASC").Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "ListDailyRecords failed,err: %v", err)
	}
	return records, nil
}

// ListDayRecords 某天全量记录 排行榜重建的数据来源
func ListDayRecords(ctx context.Context, day string) ([]*model.DailyLearningRecord, error) {
	var records []*model.DailyLearningRecord
	if err := DB.WithContext(ctx).Model(&model.DailyLearningRecord{}).
		Where("day = ?", day).Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "ListDayRecords failed,err: %v", err)
	}
	return records, nil
}

// PlatformStats 管理后台汇总指标
type PlatformStats struct {
	TotalUsers        int64   `json:"total_users"`
	TotalContents     int64   `json:"total_contents"`
	PublishedContents int64   `json:"published_contents"`
	TotalViews        int64   `json:"total_views"`
	TotalWatchTimeSec float64 `json:"total_watch_time_sec"`
	ActiveUsersToday  int64   `json:"active_users_today"`
}

func AggregatePlatformStats(ctx context.Context, today string) (*PlatformStats, error) {
	var stats PlatformStats
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("is_deleted = ?", false).Count(&stats.TotalUsers).Error; err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats users failed,err: %v", err)
	}
	if err := DB.WithContext(ctx).Model(&model.Content{}).Count(&stats.TotalContents).Error; err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats contents failed,err: %v", err)
	}
	if err := DB.WithContext(ctx).Model(&model.Content{}).
		Where("status = ?", model.ContentStatusPublished).Count(&stats.PublishedContents).Error; err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats published failed,err: %v", err)
	}
	row := DB.WithContext(ctx).Model(&model.Content{}).Select("COALESCE(SUM(view_count), 0)").Row()
	if err := row.Scan(&stats.TotalViews); err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats views failed,err: %v", err)
	}
	row = DB.WithContext(ctx).Model(&model.LearningAnalytics{}).Select("COALESCE(SUM(total_watch_time_sec), 0)").Row()
	if err := row.Scan(&stats.TotalWatchTimeSec); err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats watch time failed,err: %v", err)
	}
	if err := DB.WithContext(ctx).Model(&model.DailyLearningRecord{}).
		Where("day = ?", today).Distinct("user_id").Count(&stats.ActiveUsersToday).Error; err != nil {
		return nil, errors.Wrapf(err, "AggregatePlatformStats active users failed,err: %v", err)
	}
	return &stats, nil
}

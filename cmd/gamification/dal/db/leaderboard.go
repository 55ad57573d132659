package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RebuildLeaderboard 删除同期旧数据后整体写入 重建在事务内完成
func RebuildLeaderboard(ctx context.Context, period, periodKey string, entries []*model.LeaderboardEntry) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ? AND period_key = ?", period, periodKey).
			Delete(&model.LeaderboardEntry{}).Error; err != nil {
			return errors.Wrapf(err, "RebuildLeaderboard delete failed,err: %v", err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, 200).Error; err != nil {
			return errors.Wrapf(err, "RebuildLeaderboard insert failed,err: %v", err)
		}
		return nil
	})
}

func ListLeaderboard(ctx context.Context, period, periodKey string, limit int) ([]*model.LeaderboardEntry, error) {
	var entries []*model.LeaderboardEntry
	if err := DB.WithContext(ctx).Model(&model.LeaderboardEntry{}).
		Where("period = ? AND period_key = ?", period, periodKey).
		Order("rank ASC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, errors.Wrapf(err, "ListLeaderboard failed,err: %v", err)
	}
	return entries, nil
}

func GetUserLeaderboardEntry(ctx context.Context, period, periodKey, userId string) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	if err := DB.WithContext(ctx).Model(&model.LeaderboardEntry{}).
		Where("period = ? AND period_key = ? AND user_id = ?", period, periodKey, userId).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUserLeaderboardEntry failed,err: %v", err)
	}
	return &entry, nil
}

package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

func CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	if err := DB.WithContext(ctx).Create(achievement).Error; err != nil {
		return errors.Wrapf(err, "CreateAchievement failed,err: %v", err)
	}
	return nil
}

func ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	var achievements []*model.Achievement
	if err := DB.WithContext(ctx).Model(&model.Achievement{}).
		Order("type ASC, requirement_value ASC").Find(&achievements).Error; err != nil {
		return nil, errors.Wrapf(err, "ListAchievements failed,err: %v", err)
	}
	return achievements, nil
}

func ListUserAchievements(ctx context.Context, userId string) ([]*model.UserAchievement, error) {
	var list []*model.UserAchievement
	if err := DB.WithContext(ctx).Model(&model.UserAchievement{}).Where("user_id = ?", userId).
		Order("unlocked_at DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "ListUserAchievements failed,err: %v", err)
	}
	return list, nil
}

// UnlockAchievement 幂等解锁 已解锁时不报错 返回是否新解锁
func UnlockAchievement(ctx context.Context, ua *model.UserAchievement) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(ua)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "UnlockAchievement failed,err: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}

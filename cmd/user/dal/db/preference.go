package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetUserPreference(ctx context.Context, userId string) (*model.UserPreference, error) {
	var pref model.UserPreference
	if err := DB.WithContext(ctx).Model(&model.UserPreference{}).Where("user_id = ?", userId).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUserPreference failed,err: %v", err)
	}
	return &pref, nil
}

// SaveUserPreference 不存在则插入 存在则整行覆盖
func SaveUserPreference(ctx context.Context, pref *model.UserPreference) error {
	pref.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(pref).Error; err != nil {
		return errors.Wrapf(err, "SaveUserPreference failed,err: %v", err)
	}
	return nil
}

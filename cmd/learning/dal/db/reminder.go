package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetReminder(ctx context.Context, userId string) (*model.LearningReminder, error) {
	var reminder model.LearningReminder
	if err := DB.WithContext(ctx).Model(&model.LearningReminder{}).Where("user_id = ?", userId).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetReminder failed,err: %v", err)
	}
	return &reminder, nil
}

func SaveReminder(ctx context.Context, reminder *model.LearningReminder) error {
	reminder.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(reminder).Error; err != nil {
		return errors.Wrapf(err, "SaveReminder failed,err: %v", err)
	}
	return nil
}

// ListDueReminders 扫描到期提醒 调度器每分钟调用
func ListDueReminders(ctx context.Context, now time.Time, limit int) ([]*model.LearningReminder, error) {
	var reminders []*model.LearningReminder
	if err := DB.WithContext(ctx).Model(&model.LearningReminder{}).
		Where("enabled = ? AND next_reminder_at IS NOT NULL AND next_reminder_at <= ?", true, now).
		Limit(limit).Find(&reminders).Error; err != nil {
		return nil, errors.Wrapf(err, "ListDueReminders failed,err: %v", err)
	}
	return reminders, nil
}

func UpdateNextReminderAt(ctx context.Context, reminderId string, next *time.Time) error {
	if err := DB.WithContext(ctx).Model(&model.LearningReminder{}).Where("id = ?", reminderId).
		Updates(map[string]interface{}{"next_reminder_at": next, "updated_at": time.Now()}).Error; err != nil {
		return errors.Wrapf(err, "UpdateNextReminderAt failed,err: %v", err)
	}
	return nil
}

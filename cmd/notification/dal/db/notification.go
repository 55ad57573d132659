package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func CreateNotification(ctx context.Context, notification *model.Notification) error {
	if err := DB.WithContext(ctx).Create(notification).Error; err != nil {
		return errors.Wrapf(err, "CreateNotification failed,err: %v", err)
	}
	return nil
}

func ListNotifications(ctx context.Context, receiverId string, unreadOnly bool, page, pageSize int64) ([]*model.Notification, int64, error) {
	var notifications []*model.Notification
	var total int64
	query := DB.WithContext(ctx).Model(&model.Notification{}).Where("receiver_id = ?", receiverId)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListNotifications count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&notifications).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListNotifications failed,err: %v", err)
	}
	return notifications, total, nil
}

func MarkNotificationRead(ctx context.Context, receiverId, notificationId string) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND receiver_id = ?", notificationId, receiverId).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "MarkNotificationRead failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

func MarkAllNotificationsRead(ctx context.Context, receiverId string) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverId, false).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "MarkAllNotificationsRead failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

func CountUnread(ctx context.Context, receiverId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverId, false).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountUnread failed,err: %v", err)
	}
	return count, nil
}

// GetSettings 未配置时返回全开的默认值
func GetSettings(ctx context.Context, userId string) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	if err := DB.WithContext(ctx).Model(&model.NotificationSettings{}).Where("user_id = ?", userId).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.NotificationSettings{
				UserId:           userId,
				Interaction:      true,
				Mention:          true,
				Follow:           true,
				ReviewStatus:     true,
				LearningReminder: true,
				System:           true,
			}, nil
		}
		return nil, errors.Wrapf(err, "GetSettings failed,err: %v", err)
	}
	return &settings, nil
}

func SaveSettings(ctx context.Context, settings *model.NotificationSettings) error {
	settings.UpdatedAt = time.Now()
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error; err != nil {
		return errors.Wrapf(err, "SaveSettings failed,err: %v", err)
	}
	return nil
}

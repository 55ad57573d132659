package service

import (
	"context"

	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/notification/dal/db"
	"WorkTok.com/pkg/errno"
)

type NotificationService struct {
	ctx context.Context
}

func NewNotificationService(ctx context.Context) *NotificationService {
	return &NotificationService{ctx: ctx}
}

func (service *NotificationService) ListNotifications(userId string, unreadOnly bool, page, pageSize int64) ([]*model.Notification, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListNotifications(service.ctx, userId, unreadOnly, page, pageSize)
}

func (service *NotificationService) MarkRead(userId, notificationId string) error {
	affected, err := db.MarkNotificationRead(service.ctx, userId, notificationId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.RequestErr.WithMessage("notification not found")
	}
	return nil
}

func (service *NotificationService) MarkAllRead(userId string) (int64, error) {
	return db.MarkAllNotificationsRead(service.ctx, userId)
}

func (service *NotificationService) UnreadCount(userId string) (int64, error) {
	return db.CountUnread(service.ctx, userId)
}

func (service *NotificationService) GetSettings(userId string) (*model.NotificationSettings, error) {
	return db.GetSettings(service.ctx, userId)
}

type SettingsParam struct {
	Interaction      bool
	Mention          bool
	Follow           bool
	ReviewStatus     bool
	LearningReminder bool
	System           bool
}

func (service *NotificationService) SaveSettings(userId string, param *SettingsParam) (*model.NotificationSettings, error) {
	settings := &model.NotificationSettings{
		UserId:           userId,
		Interaction:      param.Interaction,
		Mention:          param.Mention,
		Follow:           param.Follow,
		ReviewStatus:     param.ReviewStatus,
		LearningReminder: param.LearningReminder,
		System:           param.System,
	}
	if err := db.SaveSettings(service.ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

package service

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/notification/dal/db"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventHandler 消费MQ通知事件 落库后向在线用户推送
type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// enabledFor 按接收者的通知开关过滤
func enabledFor(settings *model.NotificationSettings, notificationType string) bool {
	switch notificationType {
	case model.NotificationTypeInteraction:
		return settings.Interaction
	case model.NotificationTypeMention:
		return settings.Mention
	case model.NotificationTypeFollow:
		return settings.Follow
	case model.NotificationTypeReviewStatus:
		return settings.ReviewStatus
	case model.NotificationTypeLearningReminder:
		return settings.LearningReminder
	case model.NotificationTypeSystem:
		return settings.System
	default:
		return true
	}
}

func (h *EventHandler) HandleNotificationEvent(ctx context.Context, event *mq.NotificationEvent) error {
	settings, err := db.GetSettings(ctx, event.ReceiverID)
	if err != nil {
		return err
	}
	if !enabledFor(settings, event.NotificationType) {
		logrus.Debugf("notification %s suppressed by settings for %s", event.EventID, event.ReceiverID)
		return nil
	}
	notification := &model.Notification{
		Id:         uuid.NewString(),
		ReceiverId: event.ReceiverID,
		SenderId:   event.SenderID,
		Type:       event.NotificationType,
		Title:      event.Title,
		Body:       event.Body,
		ContentId:  event.ContentID,
		CommentId:  event.CommentID,
		CreatedAt:  time.Unix(event.Timestamp, 0),
	}
	if err := db.CreateNotification(ctx, notification); err != nil {
		return err
	}
	GetHub().Push(event.ReceiverID, notification)
	return nil
}

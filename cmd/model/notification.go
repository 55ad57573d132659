package model

import "time"

const (
	NotificationTypeInteraction      = "interaction"
	NotificationTypeMention          = "mention"
	NotificationTypeFollow           = "follow"
	NotificationTypeReviewStatus     = "review_status"
	NotificationTypeLearningReminder = "learning_reminder"
	NotificationTypeSystem           = "system"
)

type Notification struct {
	Id         string    `json:"notification_id" gorm:"primaryKey;size:36"`
	ReceiverId string    `json:"receiver_id" gorm:"index;size:36"`
	SenderId   string    `json:"sender_id" gorm:"size:36"`
	Type       string    `json:"type" gorm:"size:30"`
	Title      string    `json:"title" gorm:"size:200"`
	Body       string    `json:"body" gorm:"type:text"`
	ContentId  string    `json:"content_id" gorm:"size:36"`
	CommentId  string    `json:"comment_id" gorm:"size:36"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationSettings 按类型开关 默认全部开启
type NotificationSettings struct {
	UserId           string    `json:"user_id" gorm:"primaryKey;size:36"`
	Interaction      bool      `json:"interaction" gorm:"default:true"`
	Mention          bool      `json:"mention" gorm:"default:true"`
	Follow           bool      `json:"follow" gorm:"default:true"`
	ReviewStatus     bool      `json:"review_status" gorm:"default:true"`
	LearningReminder bool      `json:"learning_reminder" gorm:"default:true"`
	System           bool      `json:"system" gorm:"default:true"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (NotificationSettings) TableName() string { return "notification_settings" }

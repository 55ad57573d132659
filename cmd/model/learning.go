package model

import "time"

type Topic struct {
	Id           string    `json:"topic_id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"size:200"`
	Description  string    `json:"description" gorm:"type:text"`
	CoverUrl     string    `json:"cover_url" gorm:"size:500"`
	CreatorId    string    `json:"creator_id" gorm:"size:36"`
	IsActive     int       `json:"is_active"`
	ContentCount int       `json:"content_count"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Topic) TableName() string { return "topics" }

// TopicContent 专题内容关联 Order决定展示顺序
type TopicContent struct {
	TopicId   string    `json:"topic_id" gorm:"primaryKey;size:36"`
	ContentId string    `json:"content_id" gorm:"primaryKey;size:36"`
	Order     int       `json:"order" gorm:"column:order_num"`
	CreatedAt time.Time `json:"created_at"`
}

func (TopicContent) TableName() string { return "topic_contents" }

type Collection struct {
	Id              string    `json:"collection_id" gorm:"primaryKey;size:36"`
	Name            string    `json:"name" gorm:"size:200"`
	Description     string    `json:"description" gorm:"type:text"`
	CoverUrl        string    `json:"cover_url" gorm:"size:500"`
	CreatorId       string    `json:"creator_id" gorm:"size:36"`
	IsActive        int       `json:"is_active"`
	ContentCount    int       `json:"content_count"`
	ViewCount       int64     `json:"view_count"`
	CompletionCount int64     `json:"completion_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Collection) TableName() string { return "collections" }

type CollectionContent struct {
	CollectionId string    `json:"collection_id" gorm:"primaryKey;size:36"`
	ContentId    string    `json:"content_id" gorm:"primaryKey;size:36"`
	Order        int       `json:"order" gorm:"column:order_num"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CollectionContent) TableName() string { return "collection_contents" }

// LearningReminder 学习提醒 frequency: daily, weekly, custom
type LearningReminder struct {
	Id             string     `json:"reminder_id" gorm:"primaryKey;size:36"`
	UserId         string     `json:"user_id" gorm:"uniqueIndex;size:36"`
	Enabled        bool       `json:"enabled"`
	Frequency      string     `json:"frequency" gorm:"size:20"`
	TimeOfDay      string     `json:"time_of_day" gorm:"size:5"`   // HH:MM
	DaysOfWeek     string     `json:"days_of_week" gorm:"size:50"` // 1,3,5 表示周一、周三、周五
	NextReminderAt *time.Time `json:"next_reminder_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (LearningReminder) TableName() string { return "learning_reminders" }

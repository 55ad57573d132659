package model

import "time"

const (
	InteractionTypeLike     = "LIKE"
	InteractionTypeFavorite = "FAVORITE"
	InteractionTypeBookmark = "BOOKMARK"
	InteractionTypeComment  = "COMMENT"
	InteractionTypeShare    = "SHARE"
)

// Interaction 互动记录 (user, content, type)唯一
type Interaction struct {
	Id        string    `json:"interaction_id" gorm:"primaryKey;size:36"`
	UserId    string    `json:"user_id" gorm:"index:idx_user_content_type;size:36"`
	ContentId string    `json:"content_id" gorm:"index:idx_user_content_type;size:36"`
	Type      string    `json:"type" gorm:"index:idx_user_content_type;size:20"`
	Note      string    `json:"note" gorm:"type:text"` // bookmark笔记
	CreatedAt time.Time `json:"created_at"`
}

func (Interaction) TableName() string { return "interactions" }

type Comment struct {
	Id        string    `json:"comment_id" gorm:"primaryKey;size:36"`
	ContentId string    `json:"content_id" gorm:"index;size:36"`
	UserId    string    `json:"user_id" gorm:"index;size:36"`
	ParentId  string    `json:"parent_id" gorm:"index;size:36"`
	Text      string    `json:"text" gorm:"type:text"`
	// 提及的用户ID列表 JSON数组
	MentionedUsers string    `json:"mentioned_users" gorm:"type:json"`
	IsEdited       bool      `json:"is_edited"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

type Share struct {
	Id        string    `json:"share_id" gorm:"primaryKey;size:36"`
	ContentId string    `json:"content_id" gorm:"index;size:36"`
	UserId    string    `json:"user_id" gorm:"index;size:36"`
	Platform  string    `json:"platform" gorm:"size:50"` // wechat/link
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Share) TableName() string { return "shares" }

type Follow struct {
	Id         string    `json:"follow_id" gorm:"primaryKey;size:36"`
	FollowerId string    `json:"follower_id" gorm:"uniqueIndex:idx_follow_unique;size:36"`
	FolloweeId string    `json:"followee_id" gorm:"uniqueIndex:idx_follow_unique;index;size:36"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }

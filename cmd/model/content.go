package model

import "time"

// 内容状态流转 draft -> under_review -> published/rejected; published -> removed
const (
	ContentStatusDraft       = "draft"
	ContentStatusUnderReview = "under_review"
	ContentStatusPublished   = "published"
	ContentStatusRejected    = "rejected"
	ContentStatusRemoved     = "removed"
)

type Content struct {
	Id          string `json:"content_id" gorm:"primaryKey;size:36"`
	Title       string `json:"title" gorm:"size:200"`
	Description string `json:"description" gorm:"type:text"`
	VideoUrl    string `json:"video_url" gorm:"size:500"`
	CoverUrl    string `json:"cover_url" gorm:"size:500"`
	Duration    int    `json:"duration"`
	FileSize    int64  `json:"file_size"`
	CreatorId   string `json:"creator_id" gorm:"index;size:36"`
	Status      string `json:"status" gorm:"index;size:20"`
	// 内容类型（工作知识、生活分享、企业文化等）
	ContentType string `json:"content_type" gorm:"index;size:50"`

	ViewCount     int64 `json:"view_count"`
	LikeCount     int64 `json:"like_count"`
	FavoriteCount int64 `json:"favorite_count"`
	CommentCount  int64 `json:"comment_count"`
	ShareCount    int64 `json:"share_count"`

	// 精选内容（管理后台）
	IsFeatured       int    `json:"is_featured"`
	FeaturedPriority int    `json:"featured_priority"`
	FeaturedPosition string `json:"featured_position" gorm:"size:50"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at" gorm:"index"`
}

func (Content) TableName() string { return "contents" }

// ReviewRecord 审核记录 每次审核动作写入一条
type ReviewRecord struct {
	Id         string    `json:"review_id" gorm:"primaryKey;size:36"`
	ContentId  string    `json:"content_id" gorm:"index;size:36"`
	ReviewerId string    `json:"reviewer_id" gorm:"size:36"`
	ReviewType string    `json:"review_type" gorm:"size:20"` // platform_review, expert_review, ai_review
	Status     string    `json:"status" gorm:"size:20"`      // pending, approved, rejected
	Reason     string    `json:"reason" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ReviewRecord) TableName() string { return "review_records" }

const (
	ReviewTypePlatform = "platform_review"
	ReviewTypeExpert   = "expert_review"
	ReviewTypeAI       = "ai_review"

	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

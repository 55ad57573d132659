package model

import "time"

type User struct {
	Id           string     `json:"user_id" gorm:"primaryKey;size:36"`
	EmployeeId   string     `json:"employee_id" gorm:"uniqueIndex;size:50"`
	Name         string     `json:"name" gorm:"size:100"`
	AvatarUrl    string     `json:"avatar_url" gorm:"size:500"`
	Department   string     `json:"department" gorm:"size:100"`
	Position     string     `json:"position" gorm:"size:100"`
	IsKol        bool       `json:"is_kol"`
	IsAdmin      bool       `json:"is_admin"`
	PasswordHash string     `json:"-" gorm:"size:255"`
	IsDeleted    bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserPreference 推荐偏好 权重字典以JSON字符串落库
type UserPreference struct {
	Id                 string    `json:"id" gorm:"primaryKey;size:36"`
	UserId             string    `json:"user_id" gorm:"uniqueIndex;size:36"`
	RoleTagWeights     string    `json:"role_tag_weights" gorm:"type:json"`
	TopicTagWeights    string    `json:"topic_tag_weights" gorm:"type:json"`
	ContentTypeWeights string    `json:"content_type_weights" gorm:"type:json"`
	CreatorWeights     string    `json:"creator_weights" gorm:"type:json"`
	TotalWatchCount    float64   `json:"total_watch_count"`
	TotalWatchDuration float64   `json:"total_watch_duration"`
	TotalLikeCount     float64   `json:"total_like_count"`
	TotalFavoriteCount float64   `json:"total_favorite_count"`
	TotalCommentCount  float64   `json:"total_comment_count"`
	TotalShareCount    float64   `json:"total_share_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserPreference) TableName() string { return "user_preferences" }

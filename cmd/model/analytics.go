package model

import "time"

// LearningAnalytics 用户学习统计 每次播放上报后同步更新
type LearningAnalytics struct {
	UserId            string     `json:"user_id" gorm:"primaryKey;size:36"`
	TotalWatchTimeSec float64    `json:"total_watch_time_sec"`
	TotalWatched      int64      `json:"total_watched"`
	TotalCompleted    int64      `json:"total_completed"`
	StreakDays        int        `json:"streak_days"`
	LongestStreakDays int        `json:"longest_streak_days"`
	CategoryStats     string     `json:"-" gorm:"type:text"` // JSON 内容类型->观看秒数
	LastLearnedAt     *time.Time `json:"last_learned_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (LearningAnalytics) TableName() string { return "learning_analytics" }

type DailyLearningRecord struct {
	Id           string    `json:"id" gorm:"primaryKey;size:36"`
	UserId       string    `json:"user_id" gorm:"uniqueIndex:idx_daily_learning;size:36"`
	Day          string    `json:"day" gorm:"uniqueIndex:idx_daily_learning;size:10"` // 2006-01-02
	WatchedCount int64     `json:"watched_count"`
	WatchTimeSec float64   `json:"watch_time_sec"`
	Completed    int64     `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DailyLearningRecord) TableName() string { return "daily_learning_records" }

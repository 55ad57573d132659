package model

import "time"

const (
	AchievementTypeLearning     = "learning"
	AchievementTypeContribution = "contribution"
	AchievementTypeStreak       = "streak"
)

type Achievement struct {
	Id               string    `json:"achievement_id" gorm:"primaryKey;size:36"`
	Name             string    `json:"name" gorm:"size:100"`
	Description      string    `json:"description" gorm:"size:500"`
	IconUrl          string    `json:"icon_url" gorm:"size:500"`
	Type             string    `json:"type" gorm:"size:30"`
	RequirementValue int64     `json:"requirement_value"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Achievement) TableName() string { return "achievements" }

type UserAchievement struct {
	Id            string    `json:"id" gorm:"primaryKey;size:36"`
	UserId        string    `json:"user_id" gorm:"uniqueIndex:idx_user_achievement;size:36"`
	AchievementId string    `json:"achievement_id" gorm:"uniqueIndex:idx_user_achievement;size:36"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

func (UserAchievement) TableName() string { return "user_achievements" }

// LeaderboardEntry 每日重建 score = watched*10 + watch_time/60 + created*50
type LeaderboardEntry struct {
	Id             string    `json:"id" gorm:"primaryKey;size:36"`
	UserId         string    `json:"user_id" gorm:"uniqueIndex:idx_leaderboard_unique;size:36"`
	Period         string    `json:"period" gorm:"uniqueIndex:idx_leaderboard_unique;size:20"` // daily, weekly, monthly
	PeriodKey      string    `json:"period_key" gorm:"uniqueIndex:idx_leaderboard_unique;size:20"`
	Rank           int       `json:"rank"`
	Score          float64   `json:"score"`
	WatchedCount   int64     `json:"watched_count"`
	WatchTimeSec   float64   `json:"watch_time_sec"`
	CreatedContent int64     `json:"created_content"`
	CreatedAt      time.Time `json:"created_at"`
}

func (LeaderboardEntry) TableName() string { return "leaderboard_entries" }

package model

import "time"

// PlaybackProgress 播放进度 完播率>=90%视为已完成
type PlaybackProgress struct {
	Id             string    `json:"progress_id" gorm:"primaryKey;size:36"`
	UserId         string    `json:"user_id" gorm:"uniqueIndex:idx_playback_unique;size:36"`
	ContentId      string    `json:"content_id" gorm:"uniqueIndex:idx_playback_unique;size:36"`
	PositionSec    float64   `json:"position_sec"`
	CompletionRate float64   `json:"completion_rate"`
	IsCompleted    bool      `json:"is_completed"`
	WatchTimeSec   float64   `json:"watch_time_sec"`
	Speed          float64   `json:"speed"`
	LastPlayedAt   time.Time `json:"last_played_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (PlaybackProgress) TableName() string { return "playback_progresses" }

type VideoQualityPreference struct {
	UserId    string    `json:"user_id" gorm:"primaryKey;size:36"`
	Quality   string    `json:"quality" gorm:"size:10"` // auto, hd, sd
	UpdatedAt time.Time `json:"updated_at"`
}

func (VideoQualityPreference) TableName() string { return "video_quality_preferences" }

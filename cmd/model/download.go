package model

import "time"

const (
	DownloadStatusPending     = "pending"
	DownloadStatusDownloading = "downloading"
	DownloadStatusCompleted   = "completed"
	DownloadStatusFailed      = "failed"
	DownloadStatusExpired     = "expired"
)

const (
	DownloadQualityHD = "hd"
	DownloadQualitySD = "sd"
)

type Download struct {
	Id        string `json:"download_id" gorm:"primaryKey;size:36"`
	UserId    string `json:"user_id" gorm:"index;size:36"`
	ContentId string `json:"content_id" gorm:"index;size:36"`
	Status    string `json:"status" gorm:"size:20"`
	Quality   string `json:"quality" gorm:"size:10"`
	// 客户端上报的下载进度 0-100
	Progress    float64    `json:"progress"`
	FileSize    int64      `json:"file_size"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Download) TableName() string { return "downloads" }

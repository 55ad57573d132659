package model

import "time"

const (
	ReportReasonInappropriate = "inappropriate_content"
	ReportReasonSpam          = "spam"
	ReportReasonHarassment    = "harassment"
	ReportReasonFalseInfo     = "false_information"
	ReportReasonCopyright     = "copyright_violation"
	ReportReasonViolence      = "violence"
	ReportReasonHateSpeech    = "hate_speech"
	ReportReasonOther         = "other"

	ReportStatusPending   = "pending"
	ReportStatusReviewing = "reviewing"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

type Report struct {
	Id             string     `json:"report_id" gorm:"primaryKey;size:36"`
	ContentId      string     `json:"content_id" gorm:"index;size:36"`
	ReporterId     string     `json:"reporter_id" gorm:"size:36"`
	Reason         string     `json:"reason" gorm:"size:30"`
	Description    string     `json:"description" gorm:"size:1000"`
	Status         string     `json:"status" gorm:"size:20"`
	HandlerId      string     `json:"handler_id" gorm:"size:36"`
	ResolutionNote string     `json:"resolution_note" gorm:"size:1000"`
	HandledAt      *time.Time `json:"handled_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (Report) TableName() string { return "reports" }

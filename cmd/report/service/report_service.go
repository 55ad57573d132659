package service

import (
	"context"
	"time"

	contentsvc "WorkTok.com/cmd/content/service"
	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/report/dal/db"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
)

type ReportService struct {
	ctx context.Context
}

func NewReportService(ctx context.Context) *ReportService {
	return &ReportService{ctx: ctx}
}

func validReason(reason string) bool {
	switch reason {
	case model.ReportReasonInappropriate, model.ReportReasonSpam,
		model.ReportReasonHarassment, model.ReportReasonFalseInfo,
		model.ReportReasonCopyright, model.ReportReasonViolence,
		model.ReportReasonHateSpeech, model.ReportReasonOther:
		return true
	}
	return false
}

type CreateReportParam struct {
	ContentId   string
	Reason      string
	Description string
}

// CreateReport 同一用户对同一内容只能有一条待处理举报
func (service *ReportService) CreateReport(reporterId string, param *CreateReportParam) (*model.Report, error) {
	if !validReason(param.Reason) {
		return nil, errno.RequestErr.WithMessage("invalid report reason")
	}
	content, err := contentsvc.NewContentService(service.ctx).GetContent(param.ContentId)
	if err != nil {
		return nil, err
	}
	if content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}
	pending, err := db.HasPendingReport(service.ctx, reporterId, param.ContentId)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errno.DuplicateErr.WithMessage("report already pending")
	}
	report := &model.Report{
		Id:          uuid.NewString(),
		ContentId:   param.ContentId,
		ReporterId:  reporterId,
		Reason:      param.Reason,
		Description: param.Description,
		Status:      model.ReportStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := db.CreateReport(service.ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (service *ReportService) ListReports(status string, page, pageSize int64) ([]*model.Report, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListReports(service.ctx, status, page, pageSize)
}

// StartReviewing 领取举报 pending -> reviewing
func (service *ReportService) StartReviewing(handlerId, reportId string) error {
	affected, err := db.StartReviewingReport(service.ctx, reportId, handlerId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("report is not pending")
	}
	return nil
}

type ReportStatsView struct {
	ByStatus map[string]int64 `json:"by_status"`
	ByReason map[string]int64 `json:"by_reason"`
}

// ReportStats 按状态与原因两个维度统计举报量
func (service *ReportService) ReportStats() (*ReportStatsView, error) {
	byStatus, err := db.CountReportsByStatus(service.ctx)
	if err != nil {
		return nil, err
	}
	byReason, err := db.CountReportsByReason(service.ctx)
	if err != nil {
		return nil, err
	}
	return &ReportStatsView{ByStatus: byStatus, ByReason: byReason}, nil
}

// HandleReport resolve时下架涉事内容 dismiss仅关闭举报
func (service *ReportService) HandleReport(handlerId, reportId, action, note string) error {
	var status string
	switch action {
	case "resolve":
		status = model.ReportStatusResolved
	case "dismiss":
		status = model.ReportStatusDismissed
	default:
		return errno.RequestErr.WithMessage("action must be resolve or dismiss")
	}
	report, err := db.QueryReportById(service.ctx, reportId)
	if err != nil {
		return err
	}
	if report == nil {
		return errno.RequestErr.WithMessage("report not found")
	}
	affected, err := db.ResolveReport(service.ctx, reportId, handlerId, status, note)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("report already handled")
	}
	if status == model.ReportStatusResolved {
		if err := contentsvc.NewContentService(service.ctx).RemoveContent(report.ContentId, handlerId, true); err != nil {
			// 内容可能已被下架 举报处理结果不回滚
			if errno.ConvertErr(err).ErrCode != errno.StatusConflictCode {
				return err
			}
		}
	}
	return nil
}

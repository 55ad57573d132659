package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateReport(ctx context.Context, report *model.Report) error {
	if err := DB.WithContext(ctx).Create(report).Error; err != nil {
		return errors.Wrapf(err, "CreateReport failed,err: %v", err)
	}
	return nil
}

func QueryReportById(ctx context.Context, reportId string) (*model.Report, error) {
	var report model.Report
	if err := DB.WithContext(ctx).Model(&model.Report{}).Where("id = ?", reportId).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryReportById failed,err: %v", err)
	}
	return &report, nil
}

// HasPendingReport 同一用户对同一内容的未处理举报查重
func HasPendingReport(ctx context.Context, reporterId, contentId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Report{}).
		Where("reporter_id = ? AND content_id = ? AND status IN ?", reporterId, contentId,
			[]string{model.ReportStatusPending, model.ReportStatusReviewing}).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "HasPendingReport failed,err: %v", err)
	}
	return count > 0, nil
}

// StartReviewingReport pending -> reviewing 领取举报
func StartReviewingReport(ctx context.Context, reportId, handlerId string) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Report{}).
		Where("id = ? AND status = ?", reportId, model.ReportStatusPending).
		Updates(map[string]interface{}{"status": model.ReportStatusReviewing, "handler_id": handlerId})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "StartReviewingReport failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

// CountReportsByStatus 按状态统计
func CountReportsByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.Report{}).
		Select("status, COUNT(*) as cnt").Group("status").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountReportsByStatus failed,err: %v", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Cnt
	}
	return counts, nil
}

// CountReportsByReason 按举报原因统计
func CountReportsByReason(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Reason string
		Cnt    int64
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.Report{}).
		Select("reason, COUNT(*) as cnt").Group("reason").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountReportsByReason failed,err: %v", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Reason] = r.Cnt
	}
	return counts, nil
}

func ListReports(ctx context.Context, status string, page, pageSize int64) ([]*model.Report, int64, error) {
	var reports []*model.Report
	var total int64
	query := DB.WithContext(ctx).Model(&model.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListReports count failed,err: %v", err)
	}
	if err := query.Order("created_at ASC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&reports).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListReports failed,err: %v", err)
	}
	return reports, total, nil
}

func ResolveReport(ctx context.Context, reportId, handlerId, status, note string) (int64, error) {
	now := time.Now()
	result := DB.WithContext(ctx).Model(&model.Report{}).
		Where("id = ? AND status IN ?", reportId,
			[]string{model.ReportStatusPending, model.ReportStatusReviewing}).
		Updates(map[string]interface{}{
			"status":          status,
			"handler_id":      handlerId,
			"resolution_note": note,
			"handled_at":      &now,
		})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "ResolveReport failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateReviewRecord(ctx context.Context, record *model.ReviewRecord) error {
	if err := DB.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrapf(err, "CreateReviewRecord failed,err: %v", err)
	}
	return nil
}

func ListReviewRecords(ctx context.Context, contentId string) ([]*model.ReviewRecord, error) {
	var records []*model.ReviewRecord
	if err := DB.WithContext(ctx).Model(&model.ReviewRecord{}).Where("content_id = ?", contentId).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "ListReviewRecords failed,err: %v", err)
	}
	return records, nil
}

// CountReviewRecordsSince 审核统计用 status为空统计全部
func CountReviewRecordsSince(ctx context.Context, since time.Time, status string) (int64, error) {
	var count int64
	query := DB.WithContext(ctx).Model(&model.ReviewRecord{}).Where("created_at >= ?", since)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountReviewRecordsSince failed,err: %v", err)
	}
	return count, nil
}

// HasPendingExpertAssignment 专家是否持有该内容的待审指派
func HasPendingExpertAssignment(ctx context.Context, contentId, reviewerId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.ReviewRecord{}).
		Where("content_id = ? AND reviewer_id = ? AND review_type = ? AND status = ?",
			contentId, reviewerId, model.ReviewTypeExpert, model.ReviewStatusPending).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "HasPendingExpertAssignment failed,err: %v", err)
	}
	return count > 0, nil
}

func ListReviewRecordsSince(ctx context.Context, since time.Time) ([]*model.ReviewRecord, error) {
	var records []*model.ReviewRecord
	if err := DB.WithContext(ctx).Model(&model.ReviewRecord{}).Where("created_at >= ?", since).
		Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "ListReviewRecordsSince failed,err: %v", err)
	}
	return records, nil
}

// EarliestPendingRecords 各内容最早的待审记录 计算审核时长用
func EarliestPendingRecords(ctx context.Context, contentIds []string) (map[string]time.Time, error) {
	result := make(map[string]time.Time, len(contentIds))
	if len(contentIds) == 0 {
		return result, nil
	}
	type row struct {
		ContentId string
		Earliest  time.Time
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.ReviewRecord{}).
		Select("content_id, MIN(created_at) as earliest").
		Where("content_id IN ? AND status = ?", contentIds, model.ReviewStatusPending).
		Group("content_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "EarliestPendingRecords failed,err: %v", err)
	}
	for _, r := range rows {
		result[r.ContentId] = r.Earliest
	}
	return result, nil
}

// ListPendingReviewContents 审核队列 按提审时间先进先出
func ListPendingReviewContents(ctx context.Context, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	query := DB.WithContext(ctx).Model(&model.Content{}).Where("status = ?", model.ContentStatusUnderReview)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPendingReviewContents count failed,err: %v", err)
	}
	if err := query.Order("updated_at ASC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPendingReviewContents failed,err: %v", err)
	}
	return contents, total, nil
}

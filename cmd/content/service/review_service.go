package service

import (
	"context"
	"strings"
	"time"

	"WorkTok.com/cmd/content/dal/db"
	gamesvc "WorkTok.com/cmd/gamification/service"
	"WorkTok.com/cmd/model"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/cache"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReviewService struct {
	ctx context.Context
}

func NewReviewService(ctx context.Context) *ReviewService {
	return &ReviewService{ctx: ctx}
}

func validReviewType(reviewType string) bool {
	switch reviewType {
	case model.ReviewTypePlatform, model.ReviewTypeExpert, model.ReviewTypeAI:
		return true
	}
	return false
}

type SubmitReviewParam struct {
	ContentId  string
	ReviewType string
	Approved   bool
	Reason     string
}

// CanExpertReview 专家审核要求持有未完成的指派
func (service *ReviewService) CanExpertReview(contentId, reviewerId string) (bool, error) {
	return db.HasPendingExpertAssignment(service.ctx, contentId, reviewerId)
}

// SubmitReview 审核动作 通过即发布 驳回需给出理由
func (service *ReviewService) SubmitReview(reviewerId string, param *SubmitReviewParam) error {
	if !validReviewType(param.ReviewType) {
		return errno.RequestErr.WithMessage("invalid review type")
	}
	if !param.Approved && strings.TrimSpace(param.Reason) == "" {
		return errno.RequestErr.WithMessage("rejection reason is required")
	}
	content, err := db.QueryContentById(service.ctx, param.ContentId)
	if err != nil {
		return err
	}
	if content == nil {
		return errno.ContentNotFoundErr
	}

	status := model.ReviewStatusRejected
	if param.Approved {
		status = model.ReviewStatusApproved
	}
	record := &model.ReviewRecord{
		Id:         uuid.NewString(),
		ContentId:  param.ContentId,
		ReviewerId: reviewerId,
		ReviewType: param.ReviewType,
		Status:     status,
		Reason:     param.Reason,
		CreatedAt:  time.Now(),
	}

	var affected int64
	if param.Approved {
		now := time.Now()
		affected, err = db.UpdateContentStatus(service.ctx, param.ContentId,
			[]string{model.ContentStatusUnderReview}, model.ContentStatusPublished,
			map[string]interface{}{"published_at": &now})
	} else {
		affected, err = db.UpdateContentStatus(service.ctx, param.ContentId,
			[]string{model.ContentStatusUnderReview}, model.ContentStatusRejected, nil)
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("content is not under review")
	}
	if err := db.CreateReviewRecord(service.ctx, record); err != nil {
		return err
	}

	title := "内容审核通过"
	body := "你的作品《" + content.Title + "》已发布"
	if !param.Approved {
		title = "内容审核未通过"
		body = "你的作品《" + content.Title + "》被驳回: " + param.Reason
	}
	if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
		EventID:          uuid.NewString(),
		NotificationType: model.NotificationTypeReviewStatus,
		ReceiverID:       content.CreatorId,
		SenderID:         reviewerId,
		ContentID:        content.Id,
		Title:            title,
		Body:             body,
		Timestamp:        time.Now().Unix(),
	}); err != nil {
		logrus.Warnf("send review notification failed: %v", err)
	}
	if param.Approved {
		cache.InvalidateRecommendCache(service.ctx, "")
		gamesvc.NewGamificationService(service.ctx).CheckContributionAchievements(content.CreatorId)
	}
	return nil
}

type BatchResult struct {
	Success []string            `json:"success"`
	Failed  []BatchFailure `json:"failed"`
	Total   int                 `json:"total"`
}

type BatchFailure struct {
	ContentId string `json:"content_id"`
	Reason    string `json:"reason"`
}

// BatchReview 批量审核 单条失败不中断
func (service *ReviewService) BatchReview(reviewerId string, contentIds []string, approved bool, reason string) (*BatchResult, error) {
	if len(contentIds) == 0 {
		return nil, errno.RequestErr.WithMessage("content_ids is required")
	}
	result := &BatchResult{Total: len(contentIds)}
	for _, contentId := range contentIds {
		err := service.SubmitReview(reviewerId, &SubmitReviewParam{
			ContentId:  contentId,
			ReviewType: model.ReviewTypePlatform,
			Approved:   approved,
			Reason:     reason,
		})
		if err != nil {
			logrus.Warnf("batch review failed: content=%s err=%v", contentId, err)
			result.Failed = append(result.Failed, BatchFailure{
				ContentId: contentId,
				Reason:    errno.ConvertErr(err).ErrMsg,
			})
			continue
		}
		result.Success = append(result.Success, contentId)
	}
	return result, nil
}

// AssignExpertReview 指派KOL专家审核 落一条待审的专家记录并通知
func (service *ReviewService) AssignExpertReview(assignerId, contentId, expertId string) error {
	content, err := db.QueryContentById(service.ctx, contentId)
	if err != nil {
		return err
	}
	if content == nil {
		return errno.ContentNotFoundErr
	}
	if content.Status != model.ContentStatusUnderReview {
		return errno.StatusConflictErr.WithMessage("content is not under review")
	}
	expert, err := userdb.QueryUserById(service.ctx, expertId)
	if err != nil {
		return err
	}
	if expert == nil || expert.IsDeleted {
		return errno.UserNotExistErr
	}
	if !expert.IsKol {
		return errno.RequestErr.WithMessage("expert reviewer must be a KOL")
	}
	if err := db.CreateReviewRecord(service.ctx, &model.ReviewRecord{
		Id:         uuid.NewString(),
		ContentId:  contentId,
		ReviewerId: expertId,
		ReviewType: model.ReviewTypeExpert,
		Status:     model.ReviewStatusPending,
		CreatedAt:  time.Now(),
	}); err != nil {
		return err
	}
	if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
		EventID:          uuid.NewString(),
		NotificationType: model.NotificationTypeSystem,
		ReceiverID:       expertId,
		SenderID:         assignerId,
		ContentID:        contentId,
		Title:            "收到专家审核任务",
		Body:             "《" + content.Title + "》等待你的专业审核",
		Timestamp:        time.Now().Unix(),
	}); err != nil {
		logrus.Warnf("send expert assignment notification failed: %v", err)
	}
	return nil
}

type ReviewStats struct {
	PendingCount  int64   `json:"pending_count"`
	TodayTotal    int64   `json:"today_total"`
	TodayApproved int64   `json:"today_approved"`
	TodayRejected int64   `json:"today_rejected"`
	AvgLatencySec float64 `json:"avg_latency_sec"`
}

// GetReviewStats 待审数、今日审核量与平均审核时长
func (service *ReviewService) GetReviewStats() (*ReviewStats, error) {
	pending, err := db.CountContentsByStatus(service.ctx, model.ContentStatusUnderReview)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	approved, err := db.CountReviewRecordsSince(service.ctx, todayStart, model.ReviewStatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := db.CountReviewRecordsSince(service.ctx, todayStart, model.ReviewStatusRejected)
	if err != nil {
		return nil, err
	}
	stats := &ReviewStats{
		PendingCount:  pending,
		TodayTotal:    approved + rejected,
		TodayApproved: approved,
		TodayRejected: rejected,
	}

	// 平均时长 = 今日终态记录与同内容最早待审记录的时间差均值
	records, err := db.ListReviewRecordsSince(service.ctx, todayStart)
	if err != nil {
		return nil, err
	}
	var terminal []*model.ReviewRecord
	contentIds := make([]string, 0, len(records))
	for _, record := range records {
		if record.Status == model.ReviewStatusApproved || record.Status == model.ReviewStatusRejected {
			terminal = append(terminal, record)
			contentIds = append(contentIds, record.ContentId)
		}
	}
	if len(terminal) > 0 {
		pendingAt, err := db.EarliestPendingRecords(service.ctx, contentIds)
		if err != nil {
			return nil, err
		}
		stats.AvgLatencySec = avgReviewLatencySec(terminal, pendingAt)
	}
	return stats, nil
}

// avgReviewLatencySec 无对应待审记录的终态记录不计入
func avgReviewLatencySec(terminal []*model.ReviewRecord, pendingAt map[string]time.Time) float64 {
	var totalSec float64
	var counted int
	for _, record := range terminal {
		submittedAt, ok := pendingAt[record.ContentId]
		if !ok || record.CreatedAt.Before(submittedAt) {
			continue
		}
		totalSec += record.CreatedAt.Sub(submittedAt).Seconds()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return totalSec / float64(counted)
}

func (service *ReviewService) ListReviewRecords(contentId string) ([]*model.ReviewRecord, error) {
	return db.ListReviewRecords(service.ctx, contentId)
}

// ListPendingQueue 审核队列 按提审先后排序
func (service *ReviewService) ListPendingQueue(page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListPendingReviewContents(service.ctx, page, pageSize)
}

package service

import (
	"context"
	"strings"
	"time"

	"WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	tagdb "WorkTok.com/cmd/tag/dal/db"
	"WorkTok.com/pkg/cache"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ContentService struct {
	ctx context.Context
}

func NewContentService(ctx context.Context) *ContentService {
	return &ContentService{ctx: ctx}
}

type CreateContentParam struct {
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    int
	FileSize    int64
	ContentType string
	TagIds      []string
}

// CreateDraft 新建内容落草稿态
func (service *ContentService) CreateDraft(creatorId string, param *CreateContentParam) (*model.Content, error) {
	if strings.TrimSpace(param.Title) == "" {
		return nil, errno.RequestErr.WithMessage("title is required")
	}
	if param.VideoUrl == "" {
		return nil, errno.RequestErr.WithMessage("video_url is required")
	}
	content := &model.Content{
		Id:          uuid.NewString(),
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
		FileSize:    param.FileSize,
		CreatorId:   creatorId,
		Status:      model.ContentStatusDraft,
		ContentType: param.ContentType,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreateContent(service.ctx, content); err != nil {
		return nil, err
	}
	if len(param.TagIds) > 0 {
		if err := service.attachTags(content.Id, param.TagIds); err != nil {
			logrus.Warnf("attach tags failed: %v", err)
		}
	}
	return content, nil
}

func (service *ContentService) attachTags(contentId string, tagIds []string) error {
	tags, err := tagdb.QueryTagsByIds(service.ctx, tagIds)
	if err != nil {
		return err
	}
	contentTags := make([]*model.ContentTag, 0, len(tags))
	for _, tag := range tags {
		contentTags = append(contentTags, &model.ContentTag{
			Id:         uuid.NewString(),
			ContentId:  contentId,
			TagId:      tag.Id,
			Confidence: 1.0,
			IsAuto:     false,
			CreatedAt:  time.Now(),
		})
	}
	return tagdb.AttachContentTags(service.ctx, contentTags)
}

func (service *ContentService) GetContent(contentId string) (*model.Content, error) {
	content, err := db.QueryContentById(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, errno.ContentNotFoundErr
	}
	return content, nil
}

// GetVisibleContent 非作者与非管理员只能看到已发布内容
func (service *ContentService) GetVisibleContent(contentId, viewerId string, isAdmin bool) (*model.Content, error) {
	content, err := service.GetContent(contentId)
	if err != nil {
		return nil, err
	}
	if content.Status != model.ContentStatusPublished && content.CreatorId != viewerId && !isAdmin {
		return nil, errno.ContentNotFoundErr
	}
	return content, nil
}

type UpdateContentParam struct {
	Title       string
	Description string
	CoverUrl    string
	ContentType string
}

// EditableStatus 仅审核中锁定
func EditableStatus(status string) bool {
	return status != model.ContentStatusUnderReview
}

// UpdateContent 审核中的内容锁定不可编辑 其余状态创作者可改
func (service *ContentService) UpdateContent(contentId, operatorId string, param *UpdateContentParam) (*model.Content, error) {
	content, err := service.GetContent(contentId)
	if err != nil {
		return nil, err
	}
	if content.CreatorId != operatorId {
		return nil, errno.PermissionErr
	}
	if !EditableStatus(content.Status) {
		return nil, errno.StatusConflictErr.WithMessage("content under review cannot be edited")
	}
	updates := map[string]interface{}{}
	if param.Title != "" {
		updates["title"] = param.Title
	}
	if param.Description != "" {
		updates["description"] = param.Description
	}
	if param.CoverUrl != "" {
		updates["cover_url"] = param.CoverUrl
	}
	if param.ContentType != "" {
		updates["content_type"] = param.ContentType
	}
	if len(updates) > 0 {
		if err := db.UpdateContent(service.ctx, contentId, updates); err != nil {
			return nil, err
		}
	}
	return service.GetContent(contentId)
}

// DeleteDraft 仅作者可删 且必须仍是草稿
func (service *ContentService) DeleteDraft(contentId, operatorId string) error {
	content, err := service.GetContent(contentId)
	if err != nil {
		return err
	}
	if content.CreatorId != operatorId {
		return errno.PermissionErr
	}
	affected, err := db.DeleteDraftContent(service.ctx, contentId, operatorId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("only draft content can be deleted")
	}
	return nil
}

// SubmitForReview 草稿或被驳回内容提审
func (service *ContentService) SubmitForReview(contentId, operatorId string) error {
	content, err := service.GetContent(contentId)
	if err != nil {
		return err
	}
	if content.CreatorId != operatorId {
		return errno.PermissionErr
	}
	affected, err := db.UpdateContentStatus(service.ctx, contentId,
		[]string{model.ContentStatusDraft, model.ContentStatusRejected},
		model.ContentStatusUnderReview, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("content is not in draft or rejected status")
	}
	// 提审即落一条待审记录 审核时长从这条算起
	if err := db.CreateReviewRecord(service.ctx, &model.ReviewRecord{
		Id:         uuid.NewString(),
		ContentId:  contentId,
		ReviewType: model.ReviewTypePlatform,
		Status:     model.ReviewStatusPending,
		CreatedAt:  time.Now(),
	}); err != nil {
		logrus.Warnf("create pending review record failed: %v", err)
	}
	return nil
}

// RemoveContent 下架 作者或管理员可操作
func (service *ContentService) RemoveContent(contentId, operatorId string, isAdmin bool) error {
	content, err := service.GetContent(contentId)
	if err != nil {
		return err
	}
	if content.CreatorId != operatorId && !isAdmin {
		return errno.PermissionErr
	}
	affected, err := db.UpdateContentStatus(service.ctx, contentId,
		[]string{model.ContentStatusPublished}, model.ContentStatusRemoved, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("only published content can be removed")
	}
	cache.InvalidateRecommendCache(service.ctx, "")
	return nil
}

// RestoreContent 管理员恢复下架内容
func (service *ContentService) RestoreContent(contentId string) error {
	affected, err := db.UpdateContentStatus(service.ctx, contentId,
		[]string{model.ContentStatusRemoved}, model.ContentStatusPublished, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errno.StatusConflictErr.WithMessage("only removed content can be restored")
	}
	cache.InvalidateRecommendCache(service.ctx, "")
	return nil
}

func (service *ContentService) ListMyContents(creatorId, status string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListContentsByCreator(service.ctx, creatorId, status, page, pageSize)
}

func (service *ContentService) ListPublished(contentType string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListPublishedContents(service.ctx, contentType, page, pageSize)
}

// AdminListContents 管理后台全量列表
func (service *ContentService) AdminListContents(status, contentType, keyword string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListAllContents(service.ctx, status, contentType, keyword, page, pageSize)
}

func (service *ContentService) StatusStats() (map[string]int64, error) {
	return db.CountContentsGroupByStatus(service.ctx)
}

// SearchContents 起止日期按天给出 结束日含当天
func (service *ContentService) SearchContents(keyword, startDate, endDate string, page, pageSize int64) ([]*model.Content, int64, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, 0, errno.RequestErr.WithMessage("keyword is required")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	var from, to *time.Time
	if startDate != "" {
		day, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return nil, 0, errno.RequestErr.WithMessage("invalid start_date, expect YYYY-MM-DD")
		}
		from = &day
	}
	if endDate != "" {
		day, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return nil, 0, errno.RequestErr.WithMessage("invalid end_date, expect YYYY-MM-DD")
		}
		next := day.AddDate(0, 0, 1)
		to = &next
	}
	return db.SearchContents(service.ctx, keyword, from, to, page, pageSize)
}

// BatchRemove 管理后台批量下架 单条失败不中断
func (service *ContentService) BatchRemove(operatorId string, contentIds []string) (*BatchResult, error) {
	if len(contentIds) == 0 {
		return nil, errno.RequestErr.WithMessage("content_ids is required")
	}
	result := &BatchResult{Total: len(contentIds)}
	for _, contentId := range contentIds {
		if err := service.RemoveContent(contentId, operatorId, true); err != nil {
			logrus.Warnf("batch remove failed: content=%s err=%v", contentId, err)
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

// HardDelete 物理删除 仅管理后台 下架内容才允许
func (service *ContentService) HardDelete(contentId string) error {
	content, err := service.GetContent(contentId)
	if err != nil {
		return err
	}
	if content.Status != model.ContentStatusRemoved && content.Status != model.ContentStatusDraft {
		return errno.StatusConflictErr.WithMessage("only removed or draft content can be purged")
	}
	if err := db.HardDeleteContent(service.ctx, contentId); err != nil {
		return err
	}
	cache.InvalidateRecommendCache(service.ctx, "")
	return nil
}

// ValidFeaturedPriority 精选权重取值 1-100
func ValidFeaturedPriority(priority int) bool {
	return priority >= 1 && priority <= 100
}

// SetFeatured 管理后台设置精选位
func (service *ContentService) SetFeatured(contentId string, featured bool, priority int, position string) error {
	content, err := service.GetContent(contentId)
	if err != nil {
		return err
	}
	if featured && content.Status != model.ContentStatusPublished {
		return errno.StatusConflictErr.WithMessage("only published content can be featured")
	}
	if featured && !ValidFeaturedPriority(priority) {
		return errno.RequestErr.WithMessage("priority must be between 1 and 100")
	}
	isFeatured := 0
	if featured {
		isFeatured = 1
	}
	if err := db.UpdateContent(service.ctx, contentId, map[string]interface{}{
		"is_featured":       isFeatured,
		"featured_priority": priority,
		"featured_position": position,
	}); err != nil {
		return err
	}
	cache.InvalidateRecommendCache(service.ctx, "")
	return nil
}

func (service *ContentService) ListFeatured(position string, limit int) ([]*model.Content, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return db.ListFeaturedContents(service.ctx, position, limit)
}

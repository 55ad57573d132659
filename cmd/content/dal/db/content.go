package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateContent(ctx context.Context, content *model.Content) error {
	if err := DB.WithContext(ctx).Create(content).Error; err != nil {
		return errors.Wrapf(err, "CreateContent failed,err: %v", err)
	}
	return nil
}

func QueryContentById(ctx context.Context, contentId string) (*model.Content, error) {
	var content model.Content
	if err := DB.WithContext(ctx).Model(&model.Content{}).Where("id = ?", contentId).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryContentById failed,err: %v", err)
	}
	return &content, nil
}

func QueryContentsByIds(ctx context.Context, contentIds []string) ([]*model.Content, error) {
	var contents []*model.Content
	if len(contentIds) == 0 {
		return contents, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Content{}).Where("id IN ?", contentIds).Find(&contents).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryContentsByIds failed,err: %v", err)
	}
	return contents, nil
}

func UpdateContent(ctx context.Context, contentId string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := DB.WithContext(ctx).Model(&model.Content{}).Where("id = ?", contentId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateContent failed,err: %v", err)
	}
	return nil
}

// DeleteDraftContent 仅删除草稿 返回受影响行数
func DeleteDraftContent(ctx context.Context, contentId, creatorId string) (int64, error) {
	result := DB.WithContext(ctx).
		Where("id = ? AND creator_id = ? AND status = ?", contentId, creatorId, model.ContentStatusDraft).
		Delete(&model.Content{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteDraftContent failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

// HardDeleteContent 物理删除 连带标签关联 仅管理后台使用
func HardDeleteContent(ctx context.Context, contentId string) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", contentId).Delete(&model.ContentTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", contentId).Delete(&model.Content{}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "HardDeleteContent failed,err: %v", err)
	}
	return nil
}

// UpdateContentStatus 带前置状态校验的状态流转 返回受影响行数
func UpdateContentStatus(ctx context.Context, contentId string, fromStatuses []string, toStatus string, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{
		"status":     toStatus,
		"updated_at": time.Now(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	result := DB.WithContext(ctx).Model(&model.Content{}).
		Where("id = ? AND status IN ?", contentId, fromStatuses).Updates(updates)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "UpdateContentStatus failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

func ListContentsByCreator(ctx context.Context, creatorId, status string, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	query := DB.WithContext(ctx).Model(&model.Content{}).Where("creator_id = ?", creatorId)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListContentsByCreator count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListContentsByCreator failed,err: %v", err)
	}
	return contents, total, nil
}

// ListPublishedByCreators 关注流 按发布时间倒序
func ListPublishedByCreators(ctx context.Context, creatorIds []string, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	if len(creatorIds) == 0 {
		return contents, 0, nil
	}
	query := DB.WithContext(ctx).Model(&model.Content{}).
		Where("creator_id IN ? AND status = ?", creatorIds, model.ContentStatusPublished)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPublishedByCreators count failed,err: %v", err)
	}
	if err := query.Order("published_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPublishedByCreators failed,err: %v", err)
	}
	return contents, total, nil
}

func ListPublishedContents(ctx context.Context, contentType string, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	query := DB.WithContext(ctx).Model(&model.Content{}).Where("status = ?", model.ContentStatusPublished)
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPublishedContents count failed,err: %v", err)
	}
	if err := query.Order("published_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPublishedContents failed,err: %v", err)
	}
	return contents, total, nil
}

// SearchContents 标题与描述的模糊匹配 只搜已发布内容 时间窗可选
func SearchContents(ctx context.Context, keyword string, publishedFrom, publishedTo *time.Time, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	like := "%" + keyword + "%"
	query := DB.WithContext(ctx).Model(&model.Content{}).
		Where("status = ?", model.ContentStatusPublished).
		Where("title LIKE ? OR description LIKE ?", like, like)
	if publishedFrom != nil {
		query = query.Where("published_at >= ?", *publishedFrom)
	}
	if publishedTo != nil {
		query = query.Where("published_at < ?", *publishedTo)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchContents count failed,err: %v", err)
	}
	if err := query.Order("published_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchContents failed,err: %v", err)
	}
	return contents, total, nil
}

func ListFeaturedContents(ctx context.Context, position string, limit int) ([]*model.Content, error) {
	var contents []*model.Content
	query := DB.WithContext(ctx).Model(&model.Content{}).
		Where("is_featured = ? AND status = ?", 1, model.ContentStatusPublished)
	if position != "" {
		query = query.Where("featured_position = ?", position)
	}
	if err := query.Order("featured_priority DESC, published_at DESC").Limit(limit).Find(&contents).Error; err != nil {
		return nil, errors.Wrapf(err, "ListFeaturedContents failed,err: %v", err)
	}
	return contents, nil
}

// ListCandidateContents 推荐候选池 排除给定内容 时间窗可选
func ListCandidateContents(ctx context.Context, excludeIds []string, publishedAfter *time.Time, limit int) ([]*model.Content, error) {
	var contents []*model.Content
	query := DB.WithContext(ctx).Model(&model.Content{}).Where("status = ?", model.ContentStatusPublished)
	if len(excludeIds) > 0 {
		query = query.Where("id NOT IN ?", excludeIds)
	}
	if publishedAfter != nil {
		query = query.Where("published_at >= ?", *publishedAfter)
	}
	if err := query.Order("published_at DESC").Limit(limit).Find(&contents).Error; err != nil {
		return nil, errors.Wrapf(err, "ListCandidateContents failed,err: %v", err)
	}
	return contents, nil
}

// ListUnwatchedPublished 学习计划候选 可按内容类型过滤
func ListUnwatchedPublished(ctx context.Context, excludeIds, contentTypes []string, limit int) ([]*model.Content, error) {
	var contents []*model.Content
	query := DB.WithContext(ctx).Model(&model.Content{}).Where("status = ?", model.ContentStatusPublished)
	if len(excludeIds) > 0 {
		query = query.Where("id NOT IN ?", excludeIds)
	}
	if len(contentTypes) > 0 {
		query = query.Where("content_type IN ?", contentTypes)
	}
	if err := query.Order("published_at DESC").Limit(limit).Find(&contents).Error; err != nil {
		return nil, errors.Wrapf(err, "ListUnwatchedPublished failed,err: %v", err)
	}
	return contents, nil
}

// IncContentCounter 计数列原子自增 delta可为负 负值不会减到0以下
func IncContentCounter(ctx context.Context, contentId, column string, delta int64) error {
	expr := gorm.Expr(column+" + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("GREATEST("+column+" + ?, 0)", delta)
	}
	if err := DB.WithContext(ctx).Model(&model.Content{}).Where("id = ?", contentId).
		UpdateColumn(column, expr).Error; err != nil {
		return errors.Wrapf(err, "IncContentCounter failed,err: %v", err)
	}
	return nil
}

// ListAllContents 管理后台全量列表 按条件过滤
func ListAllContents(ctx context.Context, status, contentType, keyword string, page, pageSize int64) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64
	query := DB.WithContext(ctx).Model(&model.Content{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllContents count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&contents).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllContents failed,err: %v", err)
	}
	return contents, total, nil
}

// CountContentsGroupByStatus 各状态内容数
func CountContentsGroupByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.Content{}).
		Select("status, COUNT(*) as cnt").Group("status").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountContentsGroupByStatus failed,err: %v", err)
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}

func CountContentsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Content{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountContentsByStatus failed,err: %v", err)
	}
	return count, nil
}

// CountContentsCreatedBetween 统计某用户在时间窗内发布的内容数
func CountContentsCreatedBetween(ctx context.Context, creatorId string, start, end time.Time) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Content{}).
		Where("creator_id = ? AND published_at >= ? AND published_at < ?", creatorId, start, end).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountContentsCreatedBetween failed,err: %v", err)
	}
	return count, nil
}

func CountPublishedByCreator(ctx context.Context, creatorId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Content{}).
		Where("creator_id = ? AND status = ?", creatorId, model.ContentStatusPublished).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountPublishedByCreator failed,err: %v", err)
	}
	return count, nil
}

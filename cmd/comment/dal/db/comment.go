package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err: %v", err)
	}
	return nil
}

func QueryCommentById(ctx context.Context, commentId string) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentId).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryCommentById failed,err: %v", err)
	}
	return &comment, nil
}

func UpdateCommentText(ctx context.Context, commentId, text string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentId).
		Updates(map[string]interface{}{"text": text, "is_edited": true}).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentText failed,err: %v", err)
	}
	return nil
}

// ListCommentsByUser 用户评论历史
func ListCommentsByUser(ctx context.Context, userId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64
	query := DB.WithContext(ctx).Model(&model.Comment{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListCommentsByUser count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListCommentsByUser failed,err: %v", err)
	}
	return comments, total, nil
}

// ListAllComments 管理后台审查列表 条件均可选
func ListAllComments(ctx context.Context, contentId, userId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64
	query := DB.WithContext(ctx).Model(&model.Comment{})
	if contentId != "" {
		query = query.Where("content_id = ?", contentId)
	}
	if userId != "" {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllComments count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllComments failed,err: %v", err)
	}
	return comments, total, nil
}

// DeleteComment 连带删除其下回复
func DeleteComment(ctx context.Context, commentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "DeleteComment replies failed,err: %v", err)
		}
		if err := tx.Where("id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "DeleteComment failed,err: %v", err)
		}
		return nil
	})
}

// ListComments 顶级评论翻页 parentId为空查顶级
func ListComments(ctx context.Context, contentId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64
	query := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("content_id = ? AND parent_id = ?", contentId, "")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments failed,err: %v", err)
	}
	return comments, total, nil
}

func ListReplies(ctx context.Context, parentId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	var replies []*model.Comment
	var total int64
	query := DB.WithContext(ctx).Model(&model.Comment{}).Where("parent_id = ?", parentId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListReplies count failed,err: %v", err)
	}
	if err := query.Order("created_at ASC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&replies).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListReplies failed,err: %v", err)
	}
	return replies, total, nil
}

func CountReplies(ctx context.Context, parentIds []string) (map[string]int64, error) {
	type row struct {
		ParentId string
		Cnt      int64
	}
	result := make(map[string]int64, len(parentIds))
	if len(parentIds) == 0 {
		return result, nil
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("parent_id, COUNT(*) as cnt").Where("parent_id IN ?", parentIds).
		Group("parent_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountReplies failed,err: %v", err)
	}
	for _, r := range rows {
		result[r.ParentId] = r.Cnt
	}
	return result, nil
}

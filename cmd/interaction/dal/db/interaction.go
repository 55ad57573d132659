package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateInteraction(ctx context.Context, interaction *model.Interaction) error {
	if err := DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return errors.Wrapf(err, "CreateInteraction failed,err: %v", err)
	}
	return nil
}

func DeleteInteraction(ctx context.Context, userId, contentId, interactionType string) (int64, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? AND content_id = ? AND type = ?", userId, contentId, interactionType).
		Delete(&model.Interaction{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteInteraction failed,err: %v", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateInteractionNote 覆盖书签备注
func UpdateInteractionNote(ctx context.Context, userId, contentId, note string) error {
	if err := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND content_id = ? AND type = ?", userId, contentId, model.InteractionTypeBookmark).
		Update("note", note).Error; err != nil {
		return errors.Wrapf(err, "UpdateInteractionNote failed,err: %v", err)
	}
	return nil
}

func ExistsInteraction(ctx context.Context, userId, contentId, interactionType string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND content_id = ? AND type = ?", userId, contentId, interactionType).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "ExistsInteraction failed,err: %v", err)
	}
	return count > 0, nil
}

// ListUserInteractions 按类型翻页 用于点赞/收藏/书签列表
func ListUserInteractions(ctx context.Context, userId, interactionType string, page, pageSize int64) ([]*model.Interaction, int64, error) {
	var interactions []*model.Interaction
	var total int64
	query := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND type = ?", userId, interactionType)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListUserInteractions count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&interactions).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListUserInteractions failed,err: %v", err)
	}
	return interactions, total, nil
}

// ListUserInteractedContentIds 用户对某类型互动过的全部内容 用于推荐去重
func ListUserInteractedContentIds(ctx context.Context, userId string, types []string) ([]string, error) {
	var ids []string
	if err := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND type IN ?", userId, types).
		Distinct("content_id").Pluck("content_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListUserInteractedContentIds failed,err: %v", err)
	}
	return ids, nil
}

// ListAllInteractions 管理后台审查列表 条件均可选
func ListAllInteractions(ctx context.Context, interactionType, contentId, userId string, page, pageSize int64) ([]*model.Interaction, int64, error) {
	var interactions []*model.Interaction
	var total int64
	query := DB.WithContext(ctx).Model(&model.Interaction{})
	if interactionType != "" {
		query = query.Where("type = ?", interactionType)
	}
	if contentId != "" {
		query = query.Where("content_id = ?", contentId)
	}
	if userId != "" {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllInteractions count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&interactions).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListAllInteractions failed,err: %v", err)
	}
	return interactions, total, nil
}

func CountInteractions(ctx context.Context, contentId, interactionType string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("content_id = ? AND type = ?", contentId, interactionType).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountInteractions failed,err: %v", err)
	}
	return count, nil
}

// CountUserInteractionsSince 统计用户某时间后产生的互动数 用于排行榜与成就
func CountUserInteractionsSince(ctx context.Context, userId string, types []string, since time.Time) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND type IN ? AND created_at >= ?", userId, types, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountUserInteractionsSince failed,err: %v", err)
	}
	return count, nil
}

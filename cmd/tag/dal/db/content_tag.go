package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
)

func AttachContentTags(ctx context.Context, contentTags []*model.ContentTag) error {
	if len(contentTags) == 0 {
		return nil
	}
	if err := DB.WithContext(ctx).Create(contentTags).Error; err != nil {
		return errors.Wrapf(err, "AttachContentTags failed,err: %v", err)
	}
	return nil
}

func DetachContentTag(ctx context.Context, contentId, tagId string) error {
	if err := DB.WithContext(ctx).Where("content_id = ? AND tag_id = ?", contentId, tagId).
		Delete(&model.ContentTag{}).Error; err != nil {
		return errors.Wrapf(err, "DetachContentTag failed,err: %v", err)
	}
	return nil
}

func ListContentTags(ctx context.Context, contentId string) ([]*model.Tag, error) {
	var tags []*model.Tag
	if err := DB.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN content_tags ON content_tags.tag_id = tags.id").
		Where("content_tags.content_id = ?", contentId).Find(&tags).Error; err != nil {
		return nil, errors.Wrapf(err, "ListContentTags failed,err: %v", err)
	}
	return tags, nil
}

// ListContentIdsByTags 挂有任一标签的内容ID 去重
func ListContentIdsByTags(ctx context.Context, tagIds []string) ([]string, error) {
	var ids []string
	if len(tagIds) == 0 {
		return ids, nil
	}
	if err := DB.WithContext(ctx).Model(&model.ContentTag{}).
		Where("tag_id IN ?", tagIds).Distinct().Pluck("content_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListContentIdsByTags failed,err: %v", err)
	}
	return ids, nil
}

// ListChildTagIds 直接子标签ID
func ListChildTagIds(ctx context.Context, tagId string) ([]string, error) {
	var ids []string
	if err := DB.WithContext(ctx).Model(&model.Tag{}).
		Where("parent_id = ?", tagId).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListChildTagIds failed,err: %v", err)
	}
	return ids, nil
}

// ListContentTagsBatch 批量取标签 推荐打分时按内容分组
func ListContentTagsBatch(ctx context.Context, contentIds []string) (map[string][]*model.Tag, error) {
	result := make(map[string][]*model.Tag, len(contentIds))
	if len(contentIds) == 0 {
		return result, nil
	}
	type row struct {
		model.Tag
		ContentId string `gorm:"column:content_id"`
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.*, content_tags.content_id").
		Joins("JOIN content_tags ON content_tags.tag_id = tags.id").
		Where("content_tags.content_id IN ?", contentIds).Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "ListContentTagsBatch failed,err: %v", err)
	}
	for i := range rows {
		tag := rows[i].Tag
		result[rows[i].ContentId] = append(result[rows[i].ContentId], &tag)
	}
	return result, nil
}

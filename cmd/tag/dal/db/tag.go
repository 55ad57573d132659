package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateTag(ctx context.Context, tag *model.Tag) error {
	if err := DB.WithContext(ctx).Create(tag).Error; err != nil {
		return errors.Wrapf(err, "CreateTag failed,err: %v", err)
	}
	return nil
}

func QueryTagByName(ctx context.Context, name, category string) (*model.Tag, error) {
	var tag model.Tag
	err := DB.WithContext(ctx).Model(&model.Tag{}).Where("name = ? AND category = ?", name, category).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryTagByName failed,err: %v", err)
	}
	return &tag, nil
}

func ListTags(ctx context.Context, category string) ([]*model.Tag, error) {
	var tags []*model.Tag
	query := DB.WithContext(ctx).Model(&model.Tag{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("created_at ASC").Find(&tags).Error; err != nil {
		return nil, errors.Wrapf(err, "ListTags failed,err: %v", err)
	}
	return tags, nil
}

func QueryTagById(ctx context.Context, tagId string) (*model.Tag, error) {
	var tag model.Tag
	if err := DB.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", tagId).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryTagById failed,err: %v", err)
	}
	return &tag, nil
}

func CountTagChildren(ctx context.Context, tagId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tag{}).Where("parent_id = ?", tagId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountTagChildren failed,err: %v", err)
	}
	return count, nil
}

func CountTagAssignments(ctx context.Context, tagId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.ContentTag{}).Where("tag_id = ?", tagId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountTagAssignments failed,err: %v", err)
	}
	return count, nil
}

func UpdateTag(ctx context.Context, tagId string, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", tagId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateTag failed,err: %v", err)
	}
	return nil
}

// DeleteTag 连带清理子标签挂靠与内容关联
func DeleteTag(ctx context.Context, tagId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Tag{}).Where("parent_id = ?", tagId).
			UpdateColumn("parent_id", "").Error; err != nil {
			return errors.Wrapf(err, "DeleteTag detach children failed,err: %v", err)
		}
		if err := tx.Where("tag_id = ?", tagId).Delete(&model.ContentTag{}).Error; err != nil {
			return errors.Wrapf(err, "DeleteTag assignments failed,err: %v", err)
		}
		if err := tx.Where("id = ?", tagId).Delete(&model.Tag{}).Error; err != nil {
			return errors.Wrapf(err, "DeleteTag failed,err: %v", err)
		}
		return nil
	})
}

func QueryTagsByIds(ctx context.Context, tagIds []string) ([]*model.Tag, error) {
	var tags []*model.Tag
	if len(tagIds) == 0 {
		return tags, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Tag{}).Where("id IN ?", tagIds).Find(&tags).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryTagsByIds failed,err: %v", err)
	}
	return tags, nil
}

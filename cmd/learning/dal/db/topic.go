package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateTopic(ctx context.Context, topic *model.Topic) error {
	if err := DB.WithContext(ctx).Create(topic).Error; err != nil {
		return errors.Wrapf(err, "CreateTopic failed,err: %v", err)
	}
	return nil
}

func QueryTopicById(ctx context.Context, topicId string) (*model.Topic, error) {
	var topic model.Topic
	if err := DB.WithContext(ctx).Model(&model.Topic{}).Where("id = ?", topicId).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryTopicById failed,err: %v", err)
	}
	return &topic, nil
}

func UpdateTopic(ctx context.Context, topicId string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := DB.WithContext(ctx).Model(&model.Topic{}).Where("id = ?", topicId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateTopic failed,err: %v", err)
	}
	return nil
}

func ListTopics(ctx context.Context, onlyActive bool, page, pageSize int64) ([]*model.Topic, int64, error) {
	var topics []*model.Topic
	var total int64
	query := DB.WithContext(ctx).Model(&model.Topic{})
	if onlyActive {
		query = query.Where("is_active = ?", 1)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListTopics count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&topics).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListTopics failed,err: %v", err)
	}
	return topics, total, nil
}

// AddTopicContent 追加到专题末尾 Order取当前最大值+1
func AddTopicContent(ctx context.Context, topicId, contentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.TopicContent{}).Where("topic_id = ?", topicId).
			Select("COALESCE(MAX(order_num), 0)").Scan(&maxOrder).Error; err != nil {
			return errors.Wrapf(err, "AddTopicContent max order failed,err: %v", err)
		}
		tc := &model.TopicContent{TopicId: topicId, ContentId: contentId, Order: maxOrder + 1, CreatedAt: time.Now()}
		if err := tx.Create(tc).Error; err != nil {
			return errors.Wrapf(err, "AddTopicContent failed,err: %v", err)
		}
		if err := tx.Model(&model.Topic{}).Where("id = ?", topicId).
			UpdateColumn("content_count", gorm.Expr("content_count + 1")).Error; err != nil {
			return errors.Wrapf(err, "AddTopicContent count failed,err: %v", err)
		}
		return nil
	})
}

func RemoveTopicContent(ctx context.Context, topicId, contentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("topic_id = ? AND content_id = ?", topicId, contentId).Delete(&model.TopicContent{})
		if result.Error != nil {
			return errors.Wrapf(result.Error, "RemoveTopicContent failed,err: %v", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		if err := tx.Model(&model.Topic{}).Where("id = ? AND content_count > 0", topicId).
			UpdateColumn("content_count", gorm.Expr("content_count - 1")).Error; err != nil {
			return errors.Wrapf(err, "RemoveTopicContent count failed,err: %v", err)
		}
		return nil
	})
}

// ReorderTopicContents 整体覆盖顺序 contentIds的下标即新顺序
func ReorderTopicContents(ctx context.Context, topicId string, contentIds []string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, contentId := range contentIds {
			if err := tx.Model(&model.TopicContent{}).
				Where("topic_id = ? AND content_id = ?", topicId, contentId).
				UpdateColumn("order_num", i+1).Error; err != nil {
				return errors.Wrapf(err, "ReorderTopicContents failed,err: %v", err)
			}
		}
		return nil
	})
}

// ListTopTopics 按浏览量取活跃专题
func ListTopTopics(ctx context.Context, limit int) ([]*model.Topic, error) {
	var topics []*model.Topic
	if err := DB.WithContext(ctx).Model(&model.Topic{}).Where("is_active = ?", 1).
		Order("view_count DESC").Limit(limit).Find(&topics).Error; err != nil {
		return nil, errors.Wrapf(err, "ListTopTopics failed,err: %v", err)
	}
	return topics, nil
}

func ListTopicContentIds(ctx context.Context, topicId string) ([]string, error) {
	var ids []string
	if err := DB.WithContext(ctx).Model(&model.TopicContent{}).Where("topic_id = ?", topicId).
		Order("order_num ASC").Pluck("content_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListTopicContentIds failed,err: %v", err)
	}
	return ids, nil
}

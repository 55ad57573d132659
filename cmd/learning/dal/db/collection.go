package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateCollection(ctx context.Context, collection *model.Collection) error {
	if err := DB.WithContext(ctx).Create(collection).Error; err != nil {
		return errors.Wrapf(err, "CreateCollection failed,err: %v", err)
	}
	return nil
}

func QueryCollectionById(ctx context.Context, collectionId string) (*model.Collection, error) {
	var collection model.Collection
	if err := DB.WithContext(ctx).Model(&model.Collection{}).Where("id = ?", collectionId).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryCollectionById failed,err: %v", err)
	}
	return &collection, nil
}

func UpdateCollection(ctx context.Context, collectionId string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := DB.WithContext(ctx).Model(&model.Collection{}).Where("id = ?", collectionId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateCollection failed,err: %v", err)
	}
	return nil
}

func ListCollections(ctx context.Context, onlyActive bool, page, pageSize int64) ([]*model.Collection, int64, error) {
	var collections []*model.Collection
	var total int64
	query := DB.WithContext(ctx).Model(&model.Collection{})
	if onlyActive {
		query = query.Where("is_active = ?", 1)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListCollections count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&collections).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListCollections failed,err: %v", err)
	}
	return collections, total, nil
}

func AddCollectionContent(ctx context.Context, collectionId, contentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.CollectionContent{}).Where("collection_id = ?", collectionId).
			Select("COALESCE(MAX(order_num), 0)").Scan(&maxOrder).Error; err != nil {
			return errors.Wrapf(err, "AddCollectionContent max order failed,err: %v", err)
		}
		cc := &model.CollectionContent{CollectionId: collectionId, ContentId: contentId, Order: maxOrder + 1, CreatedAt: time.Now()}
		if err := tx.Create(cc).Error; err != nil {
			return errors.Wrapf(err, "AddCollectionContent failed,err: %v", err)
		}
		if err := tx.Model(&model.Collection{}).Where("id = ?", collectionId).
			UpdateColumn("content_count", gorm.Expr("content_count + 1")).Error; err != nil {
			return errors.Wrapf(err, "AddCollectionContent count failed,err: %v", err)
		}
		return nil
	})
}

func RemoveCollectionContent(ctx context.Context, collectionId, contentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("collection_id = ? AND content_id = ?", collectionId, contentId).Delete(&model.CollectionContent{})
		if result.Error != nil {
			return errors.Wrapf(result.Error, "RemoveCollectionContent failed,err: %v", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		if err := tx.Model(&model.Collection{}).Where("id = ? AND content_count > 0", collectionId).
			UpdateColumn("content_count", gorm.Expr("content_count - 1")).Error; err != nil {
			return errors.Wrapf(err, "RemoveCollectionContent count failed,err: %v", err)
		}
		return nil
	})
}

func ListCollectionContentIds(ctx context.Context, collectionId string) ([]string, error) {
	var ids []string
	if err := DB.WithContext(ctx).Model(&model.CollectionContent{}).Where("collection_id = ?", collectionId).
		Order("order_num ASC").Pluck("content_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "ListCollectionContentIds failed,err: %v", err)
	}
	return ids, nil
}

// NextCollectionContentId 合集内当前内容之后的第一条 没有下一条返回空串
func NextCollectionContentId(ctx context.Context, collectionId, currentContentId string) (string, error) {
	var current model.CollectionContent
	if err := DB.WithContext(ctx).Model(&model.CollectionContent{}).
		Where("collection_id = ? AND content_id = ?", collectionId, currentContentId).
		First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", errors.Wrapf(err, "NextCollectionContentId failed,err: %v", err)
	}
	var next model.CollectionContent
	if err := DB.WithContext(ctx).Model(&model.CollectionContent{}).
		Where("collection_id = ? AND order_num > ?", collectionId, current.Order).
		Order("order_num ASC").First(&next).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", errors.Wrapf(err, "NextCollectionContentId failed,err: %v", err)
	}
	return next.ContentId, nil
}

// ReorderCollectionContents 整体覆盖顺序 contentIds的下标即新顺序
func ReorderCollectionContents(ctx context.Context, collectionId string, contentIds []string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, contentId := range contentIds {
			if err := tx.Model(&model.CollectionContent{}).
				Where("collection_id = ? AND content_id = ?", collectionId, contentId).
				UpdateColumn("order_num", i+1).Error; err != nil {
				return errors.Wrapf(err, "ReorderCollectionContents failed,err: %v", err)
			}
		}
		return nil
	})
}

// ListTopCollections 按浏览量取活跃合集
func ListTopCollections(ctx context.Context, limit int) ([]*model.Collection, error) {
	var collections []*model.Collection
	if err := DB.WithContext(ctx).Model(&model.Collection{}).Where("is_active = ?", 1).
		Order("view_count DESC").Limit(limit).Find(&collections).Error; err != nil {
		return nil, errors.Wrapf(err, "ListTopCollections failed,err: %v", err)
	}
	return collections, nil
}

func IncCollectionCompletion(ctx context.Context, collectionId string) error {
	if err := DB.WithContext(ctx).Model(&model.Collection{}).Where("id = ?", collectionId).
		UpdateColumn("completion_count", gorm.Expr("completion_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncCollectionCompletion failed,err: %v", err)
	}
	return nil
}

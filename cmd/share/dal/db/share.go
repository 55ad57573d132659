package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateShare(ctx context.Context, share *model.Share) error {
	if err := DB.WithContext(ctx).Create(share).Error; err != nil {
		return errors.Wrapf(err, "CreateShare failed,err: %v", err)
	}
	return nil
}

func CountShares(ctx context.Context, contentId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Share{}).Where("content_id = ?", contentId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountShares failed,err: %v", err)
	}
	return count, nil
}

func ListSharesByContent(ctx context.Context, contentId string, page, pageSize int64) ([]*model.Share, int64, error) {
	var shares []*model.Share
	var total int64
	query := DB.WithContext(ctx).Model(&model.Share{}).Where("content_id = ?", contentId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListSharesByContent count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&shares).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListSharesByContent failed,err: %v", err)
	}
	return shares, total, nil
}

func ListSharesByUser(ctx context.Context, userId string, page, pageSize int64) ([]*model.Share, int64, error) {
	var shares []*model.Share
	var total int64
	query := DB.WithContext(ctx).Model(&model.Share{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListSharesByUser count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&shares).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListSharesByUser failed,err: %v", err)
	}
	return shares, total, nil
}

package db

import (
	"context"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateFollow(ctx context.Context, follow *model.Follow) error {
	if err := DB.WithContext(ctx).Create(follow).Error; err != nil {
		return errors.Wrapf(err, "CreateFollow failed,err: %v", err)
	}
	return nil
}

func DeleteFollow(ctx context.Context, followerId, followeeId string) error {
	if err := DB.WithContext(ctx).Where("follower_id = ? AND followee_id = ?", followerId, followeeId).
		Delete(&model.Follow{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteFollow failed,err: %v", err)
	}
	return nil
}

func IsFollowing(ctx context.Context, followerId, followeeId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerId, followeeId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsFollowing failed,err: %v", err)
	}
	return count > 0, nil
}

// ListFollowers 查询关注userId的人
func ListFollowers(ctx context.Context, userId string, page, pageSize int64) ([]string, int64, error) {
	var list []string
	var total int64
	query := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListFollowers count failed,err: %v", err)
	}
	if err := query.Select("follower_id").Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListFollowers failed,err: %v", err)
	}
	return list, total, nil
}

// ListFollowing 查询userId关注的人
func ListFollowing(ctx context.Context, userId string, page, pageSize int64) ([]string, int64, error) {
	var list []string
	var total int64
	query := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListFollowing count failed,err: %v", err)
	}
	if err := query.Select("followee_id").Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListFollowing failed,err: %v", err)
	}
	return list, total, nil
}

func ListFollowingIds(ctx context.Context, userId string) ([]string, error) {
	var list []string
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).
		Select("followee_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "ListFollowingIds failed,err: %v", err)
	}
	return list, nil
}

func CountFollowers(ctx context.Context, userId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountFollowers failed,err: %v", err)
	}
	return count, nil
}

func CountFollowing(ctx context.Context, userId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountFollowing failed,err: %v", err)
	}
	return count, nil
}

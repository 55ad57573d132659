package db

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

func QueryUserById(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryUserById failed,err: %v", err)
	}
	return &user, nil
}

func QueryUserByEmployeeId(ctx context.Context, employeeId string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("employee_id = ?", employeeId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryUserByEmployeeId failed,err: %v", err)
	}
	return &user, nil
}

func QueryUsersByIds(ctx context.Context, userIds []string) ([]*model.User, error) {
	var users []*model.User
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryUsersByIds failed,err: %v", err)
	}
	return users, nil
}

func UpdateUser(ctx context.Context, userId string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed,err: %v", err)
	}
	return nil
}

// SoftDeleteUser 软删除 保留互动与内容归属
func SoftDeleteUser(ctx context.Context, userId string) error {
	now := time.Now()
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
	}).Error; err != nil {
		return errors.Wrapf(err, "SoftDeleteUser failed,err: %v", err)
	}
	return nil
}

func ListUsers(ctx context.Context, keyword, department string, onlyKol bool, page, pageSize int64) ([]*model.User, int64, error) {
	var users []*model.User
	var total int64
	query := DB.WithContext(ctx).Model(&model.User{}).Where("is_deleted = ?", false)
	if keyword != "" {
		query = query.Where("name LIKE ? OR employee_id LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if onlyKol {
		query = query.Where("is_kol = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListUsers count failed,err: %v", err)
	}
	if err := query.Order("created_at DESC").Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&users).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListUsers failed,err: %v", err)
	}
	return users, total, nil
}

func ListKolUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("is_kol = ? AND is_deleted = ?", true, false).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "ListKolUsers failed,err: %v", err)
	}
	return users, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

type CreateUserParam struct {
	EmployeeId string
	Name       string
	Password   string
	Department string
	Position   string
	IsAdmin    bool
}

// CreateUser 管理员录入员工账号 工号全局唯一
func (service *UserService) CreateUser(param *CreateUserParam) (*model.User, error) {
	if strings.TrimSpace(param.EmployeeId) == "" || strings.TrimSpace(param.Name) == "" {
		return nil, errno.RequestErr.WithMessage("employee_id and name are required")
	}
	if len(param.Password) < 6 {
		return nil, errno.RequestErr.WithMessage("password must be at least 6 characters")
	}
	exist, err := db.QueryUserByEmployeeId(service.ctx, param.EmployeeId)
	if err != nil {
		return nil, errors.WithMessage(err, "query user failed")
	}
	if exist != nil {
		return nil, errno.DuplicateErr.WithMessage("employee_id already exists")
	}
	hash, err := utils.Crypt(param.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "crypt password failed")
	}
	user := &model.User{
		Id:           uuid.NewString(),
		EmployeeId:   param.EmployeeId,
		Name:         param.Name,
		Department:   param.Department,
		Position:     param.Position,
		IsAdmin:      param.IsAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.CreateUser(service.ctx, user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.Id, "employee_id": user.EmployeeId}).Info("user created")
	return user, nil
}

func (service *UserService) GetUser(userId string) (*model.User, error) {
	user, err := db.QueryUserById(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, errno.UserNotExistErr
	}
	return user, nil
}

type UpdateProfileParam struct {
	Name       string
	AvatarUrl  string
	Department string
	Position   string
}

func (service *UserService) UpdateProfile(userId string, param *UpdateProfileParam) (*model.User, error) {
	if _, err := service.GetUser(userId); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if param.Name != "" {
		updates["name"] = param.Name
	}
	if param.AvatarUrl != "" {
		updates["avatar_url"] = param.AvatarUrl
	}
	if param.Department != "" {
		updates["department"] = param.Department
	}
	if param.Position != "" {
		updates["position"] = param.Position
	}
	if len(updates) > 0 {
		if err := db.UpdateUser(service.ctx, userId, updates); err != nil {
			return nil, err
		}
	}
	return service.GetUser(userId)
}

func (service *UserService) ChangePassword(userId, oldPassword, newPassword string) error {
	user, err := service.GetUser(userId)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(oldPassword, user.PasswordHash) {
		return errno.AuthorizationErr.WithMessage("old password mismatch")
	}
	if len(newPassword) < 6 {
		return errno.RequestErr.WithMessage("password must be at least 6 characters")
	}
	hash, err := utils.Crypt(newPassword)
	if err != nil {
		return errors.WithMessage(err, "crypt password failed")
	}
	return db.UpdateUser(service.ctx, userId, map[string]interface{}{"password_hash": hash})
}

// DeleteUser 软删除 历史内容与互动保留
func (service *UserService) DeleteUser(userId string) error {
	if _, err := service.GetUser(userId); err != nil {
		return err
	}
	return db.SoftDeleteUser(service.ctx, userId)
}

func (service *UserService) ListUsers(keyword, department string, onlyKol bool, page, pageSize int64) ([]*model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListUsers(service.ctx, keyword, department, onlyKol, page, pageSize)
}

// SetKol 设置或取消KOL身份
func (service *UserService) SetKol(userId string, isKol bool) error {
	if _, err := service.GetUser(userId); err != nil {
		return err
	}
	return db.UpdateUser(service.ctx, userId, map[string]interface{}{"is_kol": isKol})
}

// ListKols 专家评审指派时的候选列表
func (service *UserService) ListKols() ([]*model.User, error) {
	return db.ListKolUsers(service.ctx)
}

// SetAdmin 设置或取消管理员
func (service *UserService) SetAdmin(userId string, isAdmin bool) error {
	if _, err := service.GetUser(userId); err != nil {
		return err
	}
	return db.UpdateUser(service.ctx, userId, map[string]interface{}{"is_admin": isAdmin})
}

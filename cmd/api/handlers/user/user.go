package handlers

import (
	"context"

	"WorkTok.com/cmd/user/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateUser 管理员录入员工
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var param CreateUserParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	user, err := service.NewUserService(ctx).CreateUser(&service.CreateUserParam{
		EmployeeId: param.EmployeeId,
		Name:       param.Name,
		Password:   param.Password,
		Department: param.Department,
		Position:   param.Position,
		IsAdmin:    param.IsAdmin,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	userId := c.Param("user_id")
	if userId == "" {
		var err error
		userId, err = jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}
	user, err := service.NewUserService(ctx).GetUser(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var param UpdateProfileParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).UpdateProfile(userId, &service.UpdateProfileParam{
		Name:       param.Name,
		AvatarUrl:  param.AvatarUrl,
		Department: param.Department,
		Position:   param.Position,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var param ChangePasswordParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewUserService(ctx).ChangePassword(userId, param.OldPassword, param.NewPassword); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeleteUser 管理员软删除账号
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	userId := c.Param("user_id")
	if err := service.NewUserService(ctx).DeleteUser(userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListUsers(ctx context.Context, c *app.RequestContext) {
	var param ListUsersParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	users, total, err := service.NewUserService(ctx).ListUsers(param.Keyword, param.Department, param.IsKol, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"users": users, "total": total})
}

// ListKols 指派专家评审时选人用 仅管理员
func ListKols(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	users, err := service.NewUserService(ctx).ListKols()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"users": users})
}

func SetKol(ctx context.Context, c *app.RequestContext) {
	var param SetKolParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewUserService(ctx).SetKol(param.UserId, param.IsKol); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func SetAdmin(ctx context.Context, c *app.RequestContext) {
	var param SetAdminParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewUserService(ctx).SetAdmin(param.UserId, param.IsAdmin); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

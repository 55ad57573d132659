package handlers

import (
	"context"
	"strings"

	"WorkTok.com/cmd/interaction/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func InteractionAction(ctx context.Context, c *app.RequestContext) {
	var param InteractionParam
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
	active, err := service.NewInteractionService(ctx).Toggle(
		userId, param.ContentId, strings.ToUpper(param.Type), param.ActionType, param.Note)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"active": active})
}

func InteractionList(ctx context.Context, c *app.RequestContext) {
	var param InteractionListParam
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
	contents, total, err := service.NewInteractionService(ctx).ListByType(
		userId, strings.ToUpper(param.Type), param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

// AdminListInteractions 审查互动记录 仅管理员
func AdminListInteractions(ctx context.Context, c *app.RequestContext) {
	var param ModerationListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	interactions, total, err := service.NewInteractionService(ctx).AdminListInteractions(
		strings.ToUpper(param.Type), param.ContentId, param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"interactions": interactions, "total": total})
}

func InteractionStatus(ctx context.Context, c *app.RequestContext) {
	contentId := c.Query("content_id")
	if contentId == "" {
		SendResponse(c, errno.RequestErr.WithMessage("content_id is required"), nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	status, err := service.NewInteractionService(ctx).GetStatus(userId, contentId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, status)
}

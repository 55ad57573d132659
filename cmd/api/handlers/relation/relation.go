package handlers

import (
	"context"

	"WorkTok.com/cmd/relation/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func FollowAction(ctx context.Context, c *app.RequestContext) {
	var param FollowActionParam
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
	if param.ActionType == 1 {
		err = service.NewRelationService(ctx).Follow(userId, param.UserId)
	} else {
		err = service.NewRelationService(ctx).Unfollow(userId, param.UserId)
	}
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func FollowerList(ctx context.Context, c *app.RequestContext) {
	var param FollowListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserId == "" {
		userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		param.UserId = userId
	}
	users, total, err := service.NewRelationService(ctx).ListFollowers(param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"users": users, "total": total})
}

func FollowingList(ctx context.Context, c *app.RequestContext) {
	var param FollowListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserId == "" {
		userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		param.UserId = userId
	}
	users, total, err := service.NewRelationService(ctx).ListFollowing(param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"users": users, "total": total})
}

// FollowingFeed 关注流
func FollowingFeed(ctx context.Context, c *app.RequestContext) {
	var param FollowListParam
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
	contents, total, err := service.NewRelationService(ctx).FollowingFeed(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

func FollowInfo(ctx context.Context, c *app.RequestContext) {
	targetId := c.Query("user_id")
	if targetId == "" {
		SendResponse(c, errno.RequestErr.WithMessage("user_id is required"), nil)
		return
	}
	viewerId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	info, err := service.NewRelationService(ctx).GetFollowInfo(targetId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}

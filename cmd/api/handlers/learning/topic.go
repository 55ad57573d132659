package handlers

import (
	"context"

	"WorkTok.com/cmd/learning/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateTopic 管理员创建学习专题
func CreateTopic(ctx context.Context, c *app.RequestContext) {
	var param SaveGroupParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	topic, err := service.NewTopicService(ctx).CreateTopic(userId, &service.SaveTopicParam{
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, topic)
}

func UpdateTopic(ctx context.Context, c *app.RequestContext) {
	var param SaveGroupParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	topic, err := service.NewTopicService(ctx).UpdateTopic(c.Param("topic_id"), &service.SaveTopicParam{
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, topic)
}

func ListTopics(ctx context.Context, c *app.RequestContext) {
	var param ListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	// 普通用户只看上线专题
	onlyActive := !jwt.IsAdmin(ctx, c)
	topics, total, err := service.NewTopicService(ctx).ListTopics(onlyActive, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"topics": topics, "total": total})
}

func GetTopicDetail(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := service.NewTopicService(ctx).GetTopicDetail(c.Param("topic_id"), userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func AddTopicContent(ctx context.Context, c *app.RequestContext) {
	var param GroupContentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTopicService(ctx).AddContent(c.Param("topic_id"), param.ContentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveTopicContent(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTopicService(ctx).RemoveContent(c.Param("topic_id"), c.Param("content_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func SetTopicActive(ctx context.Context, c *app.RequestContext) {
	var param ActiveParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTopicService(ctx).SetTopicActive(c.Param("topic_id"), param.Active); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ReorderTopic(ctx context.Context, c *app.RequestContext) {
	var param ReorderParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTopicService(ctx).Reorder(c.Param("topic_id"), param.ContentIds); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

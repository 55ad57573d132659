package handlers

import (
	"context"

	"WorkTok.com/cmd/learning/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateCollection(ctx context.Context, c *app.RequestContext) {
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
	collection, err := service.NewCollectionService(ctx).CreateCollection(userId, &service.SaveCollectionParam{
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, collection)
}

func UpdateCollection(ctx context.Context, c *app.RequestContext) {
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
	collection, err := service.NewCollectionService(ctx).UpdateCollection(c.Param("collection_id"), &service.SaveCollectionParam{
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, collection)
}

func SetCollectionActive(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewCollectionService(ctx).SetCollectionActive(c.Param("collection_id"), param.Active); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ReorderCollection(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewCollectionService(ctx).Reorder(c.Param("collection_id"), param.ContentIds); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListCollections(ctx context.Context, c *app.RequestContext) {
	var param ListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	onlyActive := !jwt.IsAdmin(ctx, c)
	collections, total, err := service.NewCollectionService(ctx).ListCollections(onlyActive, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"collections": collections, "total": total})
}

func GetCollectionDetail(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := service.NewCollectionService(ctx).GetCollectionDetail(c.Param("collection_id"), userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func AddCollectionContent(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewCollectionService(ctx).AddContent(c.Param("collection_id"), param.ContentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveCollectionContent(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewCollectionService(ctx).RemoveContent(c.Param("collection_id"), c.Param("content_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// NextInCollection 合集顺序播放的下一条
func NextInCollection(ctx context.Context, c *app.RequestContext) {
	currentId := c.Query("current_content_id")
	if currentId == "" {
		SendResponse(c, errno.RequestErr.WithMessage("current_content_id is required"), nil)
		return
	}
	content, err := service.NewCollectionService(ctx).NextContent(c.Param("collection_id"), currentId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"content": content, "has_next": content != nil})
}

// LearningPlan 个性化学习计划
func LearningPlan(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	plan, err := service.NewPlanService(ctx).GetPlan(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, plan)
}

// CompleteCollection 合集完成打卡
func CompleteCollection(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewCollectionService(ctx).MarkCompleted(c.Param("collection_id"), userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// SaveReminder 学习提醒设置
func SaveReminder(ctx context.Context, c *app.RequestContext) {
	var param ReminderParam
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
	reminder, err := service.NewReminderService(ctx).SaveReminder(userId, &service.SaveReminderParam{
		Enabled:    param.Enabled,
		Frequency:  param.Frequency,
		TimeOfDay:  param.TimeOfDay,
		DaysOfWeek: param.DaysOfWeek,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, reminder)
}

func GetReminder(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	reminder, err := service.NewReminderService(ctx).GetReminder(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, reminder)
}

package handlers

import (
	"context"
	"strconv"

	"WorkTok.com/cmd/content/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateContent 新建草稿
func CreateContent(ctx context.Context, c *app.RequestContext) {
	var param CreateContentParam
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
	content, err := service.NewContentService(ctx).CreateDraft(userId, &service.CreateContentParam{
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
		FileSize:    param.FileSize,
		ContentType: param.ContentType,
		TagIds:      param.TagIds,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, content)
}

func GetContent(ctx context.Context, c *app.RequestContext) {
	contentId := c.Param("content_id")
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	content, err := service.NewContentService(ctx).GetVisibleContent(contentId, userId, jwt.IsAdmin(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, content)
}

func UpdateContent(ctx context.Context, c *app.RequestContext) {
	var param UpdateContentParam
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
	content, err := service.NewContentService(ctx).UpdateContent(c.Param("content_id"), userId, &service.UpdateContentParam{
		Title:       param.Title,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
		ContentType: param.ContentType,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, content)
}

// DeleteDraft 删除草稿
func DeleteDraft(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewContentService(ctx).DeleteDraft(c.Param("content_id"), userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// SubmitForReview 提审
func SubmitForReview(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewContentService(ctx).SubmitForReview(c.Param("content_id"), userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// RemoveContent 下架
func RemoveContent(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewContentService(ctx).RemoveContent(c.Param("content_id"), userId, jwt.IsAdmin(ctx, c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// RestoreContent 管理员恢复
func RestoreContent(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewContentService(ctx).RestoreContent(c.Param("content_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListMyContents(ctx context.Context, c *app.RequestContext) {
	var param ContentListParam
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
	contents, total, err := service.NewContentService(ctx).ListMyContents(userId, param.Status, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

func ListContents(ctx context.Context, c *app.RequestContext) {
	var param ContentListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	contents, total, err := service.NewContentService(ctx).ListPublished(param.ContentType, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

// AdminListContents 管理后台全量列表 仅管理员
func AdminListContents(ctx context.Context, c *app.RequestContext) {
	var param AdminListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	contents, total, err := service.NewContentService(ctx).AdminListContents(
		param.Status, param.ContentType, param.Keyword, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

// ContentStatusStats 各状态内容数 仅管理员
func ContentStatusStats(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	stats, err := service.NewContentService(ctx).StatusStats()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

// BatchRemoveContents 批量下架 仅管理员
func BatchRemoveContents(ctx context.Context, c *app.RequestContext) {
	var param BatchRemoveParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	operatorId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewContentService(ctx).BatchRemove(operatorId, param.ContentIds)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// PurgeContent 物理删除 仅管理员
func PurgeContent(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewContentService(ctx).HardDelete(c.Param("content_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func SearchContents(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	contents, total, err := service.NewContentService(ctx).SearchContents(
		param.Keyword, param.StartDate, param.EndDate, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

func ListFeatured(ctx context.Context, c *app.RequestContext) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			SendResponse(c, errno.RequestErr.WithMessage("invalid limit"), nil)
			return
		}
		limit = n
	}
	contents, err := service.NewContentService(ctx).ListFeatured(c.Query("position"), limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, contents)
}

// SetFeatured 管理后台设置精选
func SetFeatured(ctx context.Context, c *app.RequestContext) {
	var param FeaturedParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewContentService(ctx).SetFeatured(param.ContentId, param.Featured, param.Priority, param.Position); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

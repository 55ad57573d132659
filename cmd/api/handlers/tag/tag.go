package handlers

import (
	"context"

	"WorkTok.com/cmd/tag/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateTag(ctx context.Context, c *app.RequestContext) {
	var param CreateTagParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	tag, err := service.NewTagService(ctx).CreateTag(&service.CreateTagParam{
		Name:     param.Name,
		Category: param.Category,
		ParentId: param.ParentId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tag)
}

func ListTags(ctx context.Context, c *app.RequestContext) {
	var param ListTagParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tags, err := service.NewTagService(ctx).ListTags(param.Category)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tags)
}

func UpdateTag(ctx context.Context, c *app.RequestContext) {
	var param UpdateTagParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	tag, err := service.NewTagService(ctx).UpdateTag(c.Param("tag_id"), &service.UpdateTagParam{
		Name:     param.Name,
		ParentId: param.ParentId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tag)
}

// DeleteTag 默认拒绝删除仍被引用的标签 force=true强删
func DeleteTag(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	force := c.Query("force") == "true"
	if err := service.NewTagService(ctx).DeleteTag(c.Param("tag_id"), force); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// TagContents 标签下的已发布内容 含子标签
func TagContents(ctx context.Context, c *app.RequestContext) {
	var param TagContentsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	contents, total, err := service.NewTagService(ctx).ListTagContents(c.Param("tag_id"), param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

func TagTree(ctx context.Context, c *app.RequestContext) {
	tree, err := service.NewTagService(ctx).TagTree(c.Query("category"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tree)
}

func ListContentTags(ctx context.Context, c *app.RequestContext) {
	tags, err := service.NewTagService(ctx).ListContentTags(c.Param("content_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tags)
}

func AttachContentTags(ctx context.Context, c *app.RequestContext) {
	var param AttachTagParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTagService(ctx).AttachContentTags(c.Param("content_id"), param.TagIds); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func DetachContentTag(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	if err := service.NewTagService(ctx).DetachContentTag(c.Param("content_id"), c.Param("tag_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

package handlers

import (
	"context"

	"WorkTok.com/cmd/download/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// RequestDownload 离线缓存授权 链接7天有效
func RequestDownload(ctx context.Context, c *app.RequestContext) {
	var param RequestDownloadParam
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
	grant, err := service.NewDownloadService(ctx).RequestDownload(userId, param.ContentId, param.Quality)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, grant)
}

func ListDownloads(ctx context.Context, c *app.RequestContext) {
	var param ListDownloadParam
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
	downloads, total, err := service.NewDownloadService(ctx).ListDownloads(userId, param.Status, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"downloads": downloads, "total": total})
}

// UpdateProgress 客户端回报下载进度
func UpdateProgress(ctx context.Context, c *app.RequestContext) {
	var param ProgressUpdateParam
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
	download, err := service.NewDownloadService(ctx).UpdateProgress(userId, c.Param("download_id"), param.Progress, param.Failed)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, download)
}

func DeleteDownload(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewDownloadService(ctx).DeleteDownload(userId, c.Param("download_id")); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// ClearDownloads 清空离线缓存
func ClearDownloads(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	cleared, err := service.NewDownloadService(ctx).ClearAll(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"cleared": cleared})
}

func StorageUsage(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	usage, err := service.NewDownloadService(ctx).GetStorageUsage(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, usage)
}

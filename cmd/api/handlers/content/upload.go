package handlers

import (
	"context"

	"WorkTok.com/cmd/content/service"
	"WorkTok.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UploadVideo multipart上传 字段名video
func UploadVideo(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("video")
	if err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr.WithMessage("video file is required"), nil)
		return
	}
	result, err := service.NewUploadService(ctx).UploadVideo(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func UploadCover(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("cover")
	if err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr.WithMessage("cover file is required"), nil)
		return
	}
	url, err := service.NewUploadService(ctx).UploadCover(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"cover_url": url})
}

func UploadAvatar(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("avatar")
	if err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr.WithMessage("avatar file is required"), nil)
		return
	}
	url, err := service.NewUploadService(ctx).UploadAvatar(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"avatar_url": url})
}

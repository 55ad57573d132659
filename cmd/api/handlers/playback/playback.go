package handlers

import (
	"context"

	"WorkTok.com/cmd/playback/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ReportProgress 播放进度心跳
func ReportProgress(ctx context.Context, c *app.RequestContext) {
	var param ProgressParam
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
	progress, err := service.NewPlaybackService(ctx).ReportProgress(userId, &service.ReportProgressParam{
		ContentId:    param.ContentId,
		PositionSec:  param.PositionSec,
		WatchTimeSec: param.WatchTimeSec,
		Speed:        param.Speed,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, progress)
}

func GetProgress(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	progress, err := service.NewPlaybackService(ctx).GetProgress(userId, c.Param("content_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, progress)
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	var param HistoryParam
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
	items, total, err := service.NewPlaybackService(ctx).ListHistory(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"items": items, "total": total})
}

// NextVideo 连播下一条
func NextVideo(ctx context.Context, c *app.RequestContext) {
	content, err := service.NewPlaybackService(ctx).NextVideo(c.Query("current_content_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"content": content, "has_next": content != nil})
}

func GetQualityPreference(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pref, err := service.NewPlaybackService(ctx).GetQualityPreference(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, pref)
}

func SetQualityPreference(ctx context.Context, c *app.RequestContext) {
	var param QualityParam
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
	if err := service.NewPlaybackService(ctx).SetQualityPreference(userId, param.Quality); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

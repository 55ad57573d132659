package handlers

import (
	"context"
	"time"

	"WorkTok.com/cmd/gamification/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// DailyLeaderboard 默认查昨日榜 榜单由定时任务重建
func DailyLeaderboard(ctx context.Context, c *app.RequestContext) {
	var param LeaderboardParam
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
	day := time.Now().AddDate(0, 0, -1)
	if param.Day != "" {
		parsed, err := time.ParseInLocation("2006-01-02", param.Day, time.Local)
		if err != nil {
			SendResponse(c, errno.RequestErr.WithMessage("invalid day, expect 2006-01-02"), nil)
			return
		}
		day = parsed
	}
	view, err := service.NewGamificationService(ctx).GetDailyLeaderboard(day, userId, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, view)
}

func ListAchievements(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	views, err := service.NewGamificationService(ctx).ListAchievements(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, views)
}

func CreateAchievement(ctx context.Context, c *app.RequestContext) {
	var param CreateAchievementParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	achievement, err := service.NewGamificationService(ctx).CreateAchievement(&service.CreateAchievementParam{
		Name:             param.Name,
		Description:      param.Description,
		IconUrl:          param.IconUrl,
		Type:             param.Type,
		RequirementValue: param.RequirementValue,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, achievement)
}

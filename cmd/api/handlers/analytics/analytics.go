package handlers

import (
	"context"
	"fmt"

	"WorkTok.com/cmd/analytics/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// MyAnalytics 个人学习统计 默认最近30天
func MyAnalytics(ctx context.Context, c *app.RequestContext) {
	var param UserAnalyticsParam
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
	view, err := service.NewAnalyticsService(ctx).GetUserAnalytics(userId, param.Days)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, view)
}

func PlatformStats(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	stats, err := service.NewAnalyticsService(ctx).GetPlatformStats()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

// ContentSummary 发布内容的总体表现 仅管理员
func ContentSummary(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	summary, err := service.NewAnalyticsService(ctx).GetContentSummary()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, summary)
}

// ContentPerformanceList 按指标排序的内容表现列表 仅管理员
func ContentPerformanceList(ctx context.Context, c *app.RequestContext) {
	var param PerformanceListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	rows, total, err := service.NewAnalyticsService(ctx).ListContentPerformance(param.SortBy, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": rows, "total": total})
}

// ContentPerformanceDetail 单内容详细表现 仅管理员
func ContentPerformanceDetail(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	row, err := service.NewAnalyticsService(ctx).GetContentPerformance(c.Param("content_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, row)
}

// ExportContentCSV 按内容导出表现指标 仅管理员
func ExportContentCSV(ctx context.Context, c *app.RequestContext) {
	var param PerformanceListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	data, err := service.NewAnalyticsService(ctx).ExportContentCSV(param.SortBy)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.Response.Header.Set("Content-Disposition", `attachment; filename="content_performance.csv"`)
	c.Data(consts.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportLearningCSV 按天导出学习明细 带BOM便于Excel直接打开
func ExportLearningCSV(ctx context.Context, c *app.RequestContext) {
	var param ExportParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	data, err := service.NewAnalyticsService(ctx).ExportLearningCSV(param.Day)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="learning_%s.csv"`, param.Day))
	c.Data(consts.StatusOK, "text/csv; charset=utf-8", data)
}

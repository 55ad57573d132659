package handlers

import (
	"context"

	"WorkTok.com/cmd/content/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SubmitReview 审核动作 管理员或持有指派的专家
func SubmitReview(ctx context.Context, c *app.RequestContext) {
	var param ReviewParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	reviewerId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		assigned, err := service.NewReviewService(ctx).CanExpertReview(param.ContentId, reviewerId)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		if !assigned {
			SendResponse(c, errno.PermissionErr, nil)
			return
		}
	}
	if err := service.NewReviewService(ctx).SubmitReview(reviewerId, &service.SubmitReviewParam{
		ContentId:  param.ContentId,
		ReviewType: param.ReviewType,
		Approved:   param.Approved,
		Reason:     param.Reason,
	}); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListReviewRecords(ctx context.Context, c *app.RequestContext) {
	records, err := service.NewReviewService(ctx).ListReviewRecords(c.Param("content_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, records)
}

// AssignExpertReview 指派KOL专家审核 仅管理员
func AssignExpertReview(ctx context.Context, c *app.RequestContext) {
	var param AssignExpertParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	assignerId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewReviewService(ctx).AssignExpertReview(assignerId, param.ContentId, param.ExpertId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// BatchReview 批量审核 仅管理员
func BatchReview(ctx context.Context, c *app.RequestContext) {
	var param BatchReviewParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	reviewerId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewReviewService(ctx).BatchReview(reviewerId, param.ContentIds, param.Approved, param.Reason)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// ReviewStatistics 审核统计 仅管理员
func ReviewStatistics(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	stats, err := service.NewReviewService(ctx).GetReviewStats()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

// ReviewQueue 审核队列 仅管理员
func ReviewQueue(ctx context.Context, c *app.RequestContext) {
	var param ContentListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	contents, total, err := service.NewReviewService(ctx).ListPendingQueue(param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"contents": contents, "total": total})
}

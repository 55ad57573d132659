package handlers

import (
	"context"

	"WorkTok.com/cmd/recommend/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Feed 个性化推荐流
func Feed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
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
	contents, err := service.NewRecommendService(ctx).GetFeed(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, contents)
}

// Similar 相似内容
func Similar(ctx context.Context, c *app.RequestContext) {
	var param SimilarParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	contents, err := service.NewRecommendService(ctx).GetSimilar(param.ContentId, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, contents)
}

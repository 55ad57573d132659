package handlers

import (
	"context"

	commentsvc "WorkTok.com/cmd/comment/service"
	sharesvc "WorkTok.com/cmd/share/service"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
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
	comment, err := commentsvc.NewCommentService(ctx).CreateComment(userId, &commentsvc.CreateCommentParam{
		ContentId:        param.ContentId,
		ParentId:         param.ParentId,
		Text:             param.Text,
		MentionedUserIds: param.MentionedUserIds,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// UpdateComment 编辑自己的评论
func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
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
	comment, err := commentsvc.NewCommentService(ctx).UpdateComment(userId, c.Param("comment_id"), param.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// MyComments 我的评论历史
func MyComments(ctx context.Context, c *app.RequestContext) {
	var param PageParam
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
	comments, total, err := commentsvc.NewCommentService(ctx).ListUserComments(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comments": comments, "total": total})
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := commentsvc.NewCommentService(ctx).DeleteComment(userId, c.Param("comment_id"), jwt.IsAdmin(ctx, c)); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// CommentList parent_id给定时返回回复列表
func CommentList(ctx context.Context, c *app.RequestContext) {
	var param CommentListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.ParentId != "" {
		replies, total, err := commentsvc.NewCommentService(ctx).ListReplies(param.ParentId, param.PageNum, param.PageSize)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, map[string]interface{}{"comments": replies, "total": total})
		return
	}
	if param.ContentId == "" {
		SendResponse(c, errno.RequestErr.WithMessage("content_id is required"), nil)
		return
	}
	comments, total, err := commentsvc.NewCommentService(ctx).ListComments(param.ContentId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comments": comments, "total": total})
}

// AdminListComments 审查评论记录 仅管理员
func AdminListComments(ctx context.Context, c *app.RequestContext) {
	var param ModerationListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if !jwt.IsAdmin(ctx, c) {
		SendResponse(c, errno.PermissionErr, nil)
		return
	}
	comments, total, err := commentsvc.NewCommentService(ctx).AdminListComments(
		param.ContentId, param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comments": comments, "total": total})
}

func ShareContent(ctx context.Context, c *app.RequestContext) {
	var param ShareParam
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
	result, err := sharesvc.NewShareService(ctx).ShareContent(userId, param.ContentId, param.Platform)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func MyShares(ctx context.Context, c *app.RequestContext) {
	var param PageParam
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
	shares, total, err := sharesvc.NewShareService(ctx).ListMyShares(userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"shares": shares, "total": total})
}

func ContentShares(ctx context.Context, c *app.RequestContext) {
	var param PageParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	shares, total, err := sharesvc.NewShareService(ctx).ListContentShares(c.Param("content_id"), param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"shares": shares, "total": total})
}

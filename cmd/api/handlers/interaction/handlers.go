package handlers

import (
	"WorkTok.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type InteractionParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
	// like, favorite, bookmark小写入参 服务层转大写常量
	Type string `json:"type" vd:"len($)>0"`
	// 1添加 2取消
	ActionType int    `json:"action_type" vd:"$==1||$==2"`
	Note       string `json:"note"`
}

type InteractionListParam struct {
	Type     string `query:"type" vd:"len($)>0"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

type CreateCommentParam struct {
	ContentId        string   `json:"content_id" vd:"len($)>0"`
	ParentId         string   `json:"parent_id"`
	Text             string   `json:"text" vd:"len($)>0"`
	MentionedUserIds []string `json:"mentioned_user_ids"`
}

type CommentListParam struct {
	ContentId string `query:"content_id"`
	ParentId  string `query:"parent_id"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type UpdateCommentParam struct {
	Text string `json:"text" vd:"len($)>0"`
}

type PageParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type ModerationListParam struct {
	Type      string `query:"type"`
	ContentId string `query:"content_id"`
	UserId    string `query:"user_id"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type ShareParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
	Platform  string `json:"platform"`
}

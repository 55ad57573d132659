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

type ListNotificationParam struct {
	UnreadOnly bool  `query:"unread_only"`
	PageNum    int64 `query:"page_num"`
	PageSize   int64 `query:"page_size"`
}

type SettingsParam struct {
	Interaction      bool `json:"interaction"`
	Mention          bool `json:"mention"`
	Follow           bool `json:"follow"`
	ReviewStatus     bool `json:"review_status"`
	LearningReminder bool `json:"learning_reminder"`
	System           bool `json:"system"`
}

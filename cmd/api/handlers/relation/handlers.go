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

type FollowActionParam struct {
	UserId string `json:"user_id" vd:"len($)>0"`
	// 1关注 2取关
	ActionType int `json:"action_type" vd:"$==1||$==2"`
}

type FollowListParam struct {
	UserId   string `query:"user_id"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

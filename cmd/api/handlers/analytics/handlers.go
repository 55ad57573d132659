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

type UserAnalyticsParam struct {
	Days int `query:"days"`
}

type ExportParam struct {
	Day string `query:"day" vd:"len($)>0"`
}

type PerformanceListParam struct {
	SortBy   string `query:"sort_by"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

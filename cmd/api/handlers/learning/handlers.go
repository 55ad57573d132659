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

type SaveGroupParam struct {
	Name        string `json:"name" vd:"len($)>0"`
	Description string `json:"description"`
	CoverUrl    string `json:"cover_url"`
}

type GroupContentParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
}

type ReorderParam struct {
	ContentIds []string `json:"content_ids" vd:"len($)>0"`
}

type ListParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type ActiveParam struct {
	Active bool `json:"active"`
}

type ReminderParam struct {
	Enabled    bool   `json:"enabled"`
	Frequency  string `json:"frequency"`
	TimeOfDay  string `json:"time_of_day"`
	DaysOfWeek string `json:"days_of_week"`
}

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

type ProgressParam struct {
	ContentId    string  `json:"content_id" vd:"len($)>0"`
	PositionSec  float64 `json:"position_sec" vd:"$>=0"`
	WatchTimeSec float64 `json:"watch_time_sec" vd:"$>=0"`
	Speed        float64 `json:"speed"`
}

type HistoryParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type QualityParam struct {
	Quality string `json:"quality" vd:"len($)>0"`
}

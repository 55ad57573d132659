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

type RequestDownloadParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
	// hd或sd 缺省hd
	Quality string `json:"quality"`
}

type ProgressUpdateParam struct {
	Progress float64 `json:"progress" vd:"$>=0&&$<=100"`
	Failed   bool    `json:"failed"`
}

type ListDownloadParam struct {
	Status   string `query:"status"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

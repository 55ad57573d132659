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

type CreateTagParam struct {
	Name     string `json:"name" vd:"len($)>0"`
	Category string `json:"category" vd:"len($)>0"`
	ParentId string `json:"parent_id"`
}

type UpdateTagParam struct {
	Name     string  `json:"name"`
	ParentId *string `json:"parent_id"`
}

type ListTagParam struct {
	Category string `query:"category"`
}

type AttachTagParam struct {
	TagIds []string `json:"tag_ids" vd:"len($)>0"`
}

type TagContentsParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

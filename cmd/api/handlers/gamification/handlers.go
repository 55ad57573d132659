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

type LeaderboardParam struct {
	Day   string `query:"day"`
	Limit int    `query:"limit"`
}

type CreateAchievementParam struct {
	Name             string `json:"name" vd:"len($)>0"`
	Description      string `json:"description"`
	IconUrl          string `json:"icon_url"`
	Type             string `json:"type" vd:"len($)>0"`
	RequirementValue int64  `json:"requirement_value" vd:"$>0"`
}

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

type CreateContentParam struct {
	Title       string   `json:"title" vd:"len($)>0"`
	Description string   `json:"description"`
	VideoUrl    string   `json:"video_url" vd:"len($)>0"`
	CoverUrl    string   `json:"cover_url"`
	Duration    int      `json:"duration"`
	FileSize    int64    `json:"file_size"`
	ContentType string   `json:"content_type"`
	TagIds      []string `json:"tag_ids"`
}

type UpdateContentParam struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverUrl    string `json:"cover_url"`
	ContentType string `json:"content_type"`
}

type ContentListParam struct {
	Status      string `query:"status"`
	ContentType string `query:"content_type"`
	PageNum     int64  `query:"page_num"`
	PageSize    int64  `query:"page_size"`
}

type SearchParam struct {
	Keyword   string `query:"keyword" vd:"len($)>0"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type ReviewParam struct {
	ContentId  string `json:"content_id" vd:"len($)>0"`
	ReviewType string `json:"review_type" vd:"len($)>0"`
	Approved   bool   `json:"approved"`
	Reason     string `json:"reason"`
}

type AdminListParam struct {
	Status      string `query:"status"`
	ContentType string `query:"content_type"`
	Keyword     string `query:"keyword"`
	PageNum     int64  `query:"page_num"`
	PageSize    int64  `query:"page_size"`
}

type AssignExpertParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
	ExpertId  string `json:"expert_id" vd:"len($)>0"`
}

type BatchRemoveParam struct {
	ContentIds []string `json:"content_ids" vd:"len($)>0"`
}

type BatchReviewParam struct {
	ContentIds []string `json:"content_ids" vd:"len($)>0"`
	Approved   bool     `json:"approved"`
	Reason     string   `json:"reason"`
}

type FeaturedParam struct {
	ContentId string `json:"content_id" vd:"len($)>0"`
	Featured  bool   `json:"featured"`
	Priority  int    `json:"priority"`
	Position  string `json:"position"`
}

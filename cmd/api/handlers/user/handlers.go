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

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateUserParam struct {
	EmployeeId string `json:"employee_id" vd:"len($)>0"`
	Name       string `json:"name" vd:"len($)>0"`
	Password   string `json:"password" vd:"len($)>5"`
	Department string `json:"department"`
	Position   string `json:"position"`
	IsAdmin    bool   `json:"is_admin"`
}

type UpdateProfileParam struct {
	Name       string `json:"name"`
	AvatarUrl  string `json:"avatar_url"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type ChangePasswordParam struct {
	OldPassword string `json:"old_password" vd:"len($)>0"`
	NewPassword string `json:"new_password" vd:"len($)>5"`
}

type ListUsersParam struct {
	Keyword    string `query:"keyword"`
	Department string `query:"department"`
	IsKol      bool   `query:"is_kol"`
	PageNum    int64  `query:"page_num"`
	PageSize   int64  `query:"page_size"`
}

type SetKolParam struct {
	UserId string `json:"user_id" vd:"len($)>0"`
	IsKol  bool   `json:"is_kol"`
}

type SetAdminParam struct {
	UserId  string `json:"user_id" vd:"len($)>0"`
	IsAdmin bool   `json:"is_admin"`
}

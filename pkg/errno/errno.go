package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode         = 0
	ServiceErrCode      = 10001
	ParamErrCode        = 10002
	RequestErrCode      = 10003
	UserNotExistCode    = 10004
	AuthorizationCode   = 10005
	PermissionCode      = 10006
	ContentNotFoundCode = 10007
	StatusConflictCode  = 10008
	DuplicateCode       = 10009
	RateLimitCode       = 10010
	StorageErrCode      = 10011
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage 换掉默认文案 错误码不变
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success            = NewErrNo(SuccessCode, "Success")
	ServiceErr         = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr           = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr         = NewErrNo(RequestErrCode, "Bad Request")
	UserNotExistErr    = NewErrNo(UserNotExistCode, "User does not exist")
	AuthorizationErr   = NewErrNo(AuthorizationCode, "Authorization failed")
	PermissionErr      = NewErrNo(PermissionCode, "No permission to operate")
	ContentNotFoundErr = NewErrNo(ContentNotFoundCode, "Content does not exist")
	StatusConflictErr  = NewErrNo(StatusConflictCode, "Operation conflicts with current status")
	DuplicateErr       = NewErrNo(DuplicateCode, "Duplicate operation")
	RateLimitErr       = NewErrNo(RateLimitCode, "Too many requests")
	StorageErr         = NewErrNo(StorageErrCode, "Storage operation failed")
)

// ConvertErr 将任意error归一化为ErrNo 未知错误按ServiceErr处理
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	e := ErrNo{}
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

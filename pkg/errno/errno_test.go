package errno

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("ErrNoPassThrough", func(t *testing.T) {
		got := ConvertErr(ContentNotFoundErr)
		assert.Equal(t, int64(ContentNotFoundCode), got.ErrCode)
	})

	t.Run("WrappedErrNo", func(t *testing.T) {
		wrapped := pkgerrors.Wrap(StatusConflictErr, "submit review")
		got := ConvertErr(wrapped)
		assert.Equal(t, int64(StatusConflictCode), got.ErrCode)
	})

	t.Run("UnknownError", func(t *testing.T) {
		got := ConvertErr(errors.New("dial tcp: connection refused"))
		assert.Equal(t, int64(ServiceErrCode), got.ErrCode)
		assert.Equal(t, "dial tcp: connection refused", got.ErrMsg)
	})
}

func TestWithMessage(t *testing.T) {
	custom := RequestErr.WithMessage("name is required")
	assert.Equal(t, int64(RequestErrCode), custom.ErrCode)
	assert.Equal(t, "name is required", custom.ErrMsg)
	// 原值不受影响
	assert.Equal(t, "Bad Request", RequestErr.ErrMsg)
}

package handlers

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ServeFile 流式回源存储对象 本地后端的媒体文件经此访问
func ServeFile(ctx context.Context, c *app.RequestContext) {
	objectName := strings.TrimPrefix(c.Param("object"), "/")
	if objectName == "" {
		SendResponse(c, errno.RequestErr.WithMessage("object name is required"), nil)
		return
	}
	reader, err := oss.GetStorage().Download(ctx, objectName)
	if err != nil {
		hlog.Info(err)
		SendResponse(c, errno.RequestErr.WithMessage("object not found"), nil)
		return
	}
	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.SetContentType(contentType)
	c.SetBodyStream(reader, -1)
}

package handlers

import (
	"context"

	"WorkTok.com/cmd/notification/service"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/websocket"
)

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(ctx *app.RequestContext) bool {
		return true // 内网部署 不校验来源
	},
}

var badConnection = []byte(`bad connection`)

// Subscribe 长连接推送 连接期间的新通知实时下发
func Subscribe(ctx context.Context, c *app.RequestContext) {
	err := upgrader.Upgrade(c, func(conn *websocket.Conn) {
		userId, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, badConnection)
			return
		}
		hub := service.GetHub()
		hub.Register(userId, conn)
		defer hub.Unregister(userId, conn)

		// 读循环只用于感知关闭 客户端消息被忽略
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	if err != nil {
		c.JSON(consts.StatusOK, `error`)
		return
	}
}

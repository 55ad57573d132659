package websocket

import (
	handler_notification "WorkTok.com/cmd/api/handlers/notification"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func WebsocketRegister(h *server.Hertz) {
	h.GET(`/ws/notifications`, append(_wsAuth(), handler_notification.Subscribe)...)
}

package service

import (
	"encoding/json"
	"sync"

	"WorkTok.com/cmd/model"
	"github.com/hertz-contrib/websocket"
	"github.com/sirupsen/logrus"
)

// Hub 在线连接表 每个用户保留最新的一条连接
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

var defaultHub = &Hub{conns: make(map[string]*websocket.Conn)}

func GetHub() *Hub {
	return defaultHub
}

func (h *Hub) Register(userId string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.conns[userId]; ok && old != conn {
		old.Close()
	}
	h.conns[userId] = conn
}

func (h *Hub) Unregister(userId string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.conns[userId]; ok && current == conn {
		delete(h.conns, userId)
	}
}

// Push 用户不在线时静默丢弃 落库的通知记录兜底
func (h *Hub) Push(userId string, notification *model.Notification) {
	h.mu.RLock()
	conn, ok := h.conns[userId]
	h.mu.RUnlock()
	if !ok {
		return
	}
	data, err := json.Marshal(notification)
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logrus.Debugf("ws push to %s failed: %v", userId, err)
		h.Unregister(userId, conn)
	}
}

package mq

// NotificationEvent 通知事件
type NotificationEvent struct {
	EventID          string `json:"event_id"`           // 事件ID
	NotificationType string `json:"notification_type"`  // review_status, interaction, mention, follow, learning_reminder, system
	ReceiverID       string `json:"receiver_id"`        // 接收者ID
	SenderID         string `json:"sender_id"`          // 发送者ID
	ContentID        string `json:"content_id"`         // 关联内容ID
	CommentID        string `json:"comment_id"`         // 关联评论ID
	Title            string `json:"title"`              // 通知标题
	Body             string `json:"body"`               // 通知内容
	Timestamp        int64  `json:"timestamp"`          // 时间戳
}

const (
	NotificationEventExchange = "notification_events"
	NotificationEventQueue    = "notification_event_queue"
)

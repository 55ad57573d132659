package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"WorkTok.com/cmd/comment/dal/db"
	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	userdb "WorkTok.com/cmd/user/dal/db"
	usersvc "WorkTok.com/cmd/user/service"
	"WorkTok.com/pkg/cache"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MaxCommentLength    = 500
	CommentRateLimit    = 10  // 每分钟上限
	DuplicateTimeWindow = 300 // 重复检测窗口 秒
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errno.RequestErr.WithMessage("comment cannot be empty")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return errno.RequestErr.WithMessage("comment too long, maximum 500 characters allowed")
	}
	return nil
}

type CreateCommentParam struct {
	ContentId        string
	ParentId         string
	Text             string
	MentionedUserIds []string
}

// CreateComment 限频与重复检测走Redis 提及的同事会收到通知
func (service *CommentService) CreateComment(userId string, param *CreateCommentParam) (*model.Comment, error) {
	if err := service.validateText(param.Text); err != nil {
		return nil, err
	}

	count, err := cache.IncrCommentRate(service.ctx, userId, time.Minute)
	if err != nil {
		logrus.Warnf("comment rate check failed: %v", err)
	} else if count > CommentRateLimit {
		return nil, errno.RateLimitErr.WithMessage("too many comments, slow down")
	}
	duplicate, err := cache.CheckDuplicateComment(service.ctx, userId, param.Text, DuplicateTimeWindow*time.Second)
	if err != nil {
		logrus.Warnf("duplicate comment check failed: %v", err)
	} else if duplicate {
		return nil, errno.DuplicateErr.WithMessage("duplicate comment")
	}

	content, err := contentdb.QueryContentById(service.ctx, param.ContentId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}

	var parent *model.Comment
	if param.ParentId != "" {
		parent, err = db.QueryCommentById(service.ctx, param.ParentId)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.ContentId != param.ContentId {
			return nil, errno.RequestErr.WithMessage("parent comment not found")
		}
		// 只支持一层回复 对回复的回复挂到同一个顶级评论下
		if parent.ParentId != "" {
			param.ParentId = parent.ParentId
		}
	}

	mentioned := "[]"
	if len(param.MentionedUserIds) > 0 {
		users, err := userdb.QueryUsersByIds(service.ctx, param.MentionedUserIds)
		if err != nil {
			return nil, err
		}
		validIds := make([]string, 0, len(users))
		for _, user := range users {
			if !user.IsDeleted {
				validIds = append(validIds, user.Id)
			}
		}
		data, _ := json.Marshal(validIds)
		mentioned = string(data)
		param.MentionedUserIds = validIds
	}

	comment := &model.Comment{
		Id:             uuid.NewString(),
		ContentId:      param.ContentId,
		UserId:         userId,
		ParentId:       param.ParentId,
		Text:           param.Text,
		MentionedUsers: mentioned,
		CreatedAt:      time.Now(),
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, err
	}
	if err := contentdb.IncContentCounter(service.ctx, param.ContentId, "comment_count", 1); err != nil {
		logrus.Warnf("inc comment_count failed: %v", err)
	}

	usersvc.NewPreferenceService(service.ctx).RecordInteraction(userId, content, model.InteractionTypeComment, 0)

	service.notify(userId, content, comment, param.MentionedUserIds, parent)
	return comment, nil
}

func (service *CommentService) notify(userId string, content *model.Content, comment *model.Comment, mentionedIds []string, parent *model.Comment) {
	send := func(receiverId, notificationType, title, body string) {
		if receiverId == userId {
			return
		}
		if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
			EventID:          uuid.NewString(),
			NotificationType: notificationType,
			ReceiverID:       receiverId,
			SenderID:         userId,
			ContentID:        content.Id,
			CommentID:        comment.Id,
			Title:            title,
			Body:             body,
			Timestamp:        time.Now().Unix(),
		}); err != nil {
			logrus.Warnf("send comment notification failed: %v", err)
		}
	}

	if parent != nil {
		send(parent.UserId, model.NotificationTypeInteraction, "收到回复", "你的评论收到了新回复")
	} else {
		send(content.CreatorId, model.NotificationTypeInteraction, "收到评论", "你的作品《"+content.Title+"》收到了新评论")
	}
	for _, mentionedId := range mentionedIds {
		send(mentionedId, model.NotificationTypeMention, "有人@了你", "你在一条评论中被提及")
	}
}

// UpdateComment 仅评论作者可改
func (service *CommentService) UpdateComment(userId, commentId, text string) (*model.Comment, error) {
	if err := service.validateText(text); err != nil {
		return nil, err
	}
	comment, err := db.QueryCommentById(service.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errno.RequestErr.WithMessage("comment not found")
	}
	if comment.UserId != userId {
		return nil, errno.PermissionErr
	}
	if err := db.UpdateCommentText(service.ctx, commentId, text); err != nil {
		return nil, err
	}
	return db.QueryCommentById(service.ctx, commentId)
}

// ListUserComments 我的评论历史
func (service *CommentService) ListUserComments(userId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListCommentsByUser(service.ctx, userId, page, pageSize)
}

// AdminListComments 管理后台审查列表
func (service *CommentService) AdminListComments(contentId, userId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListAllComments(service.ctx, contentId, userId, page, pageSize)
}

// DeleteComment 评论作者、内容作者或管理员可删
func (service *CommentService) DeleteComment(userId, commentId string, isAdmin bool) error {
	comment, err := db.QueryCommentById(service.ctx, commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return errno.RequestErr.WithMessage("comment not found")
	}
	content, err := contentdb.QueryContentById(service.ctx, comment.ContentId)
	if err != nil {
		return err
	}
	if comment.UserId != userId && !isAdmin && (content == nil || content.CreatorId != userId) {
		return errno.PermissionErr
	}
	// 级联删除回复 计数要把回复一并扣掉
	replyCounts, err := db.CountReplies(service.ctx, []string{commentId})
	if err != nil {
		return err
	}
	removed := CommentRemovalDelta(replyCounts[commentId])
	if err := db.DeleteComment(service.ctx, commentId); err != nil {
		return err
	}
	if err := contentdb.IncContentCounter(service.ctx, comment.ContentId, "comment_count", removed); err != nil {
		logrus.Warnf("dec comment_count failed: %v", err)
	}
	return nil
}

// CommentRemovalDelta 删除一条评论对comment_count的增量 含其级联回复
func CommentRemovalDelta(replyCount int64) int64 {
	return -(1 + replyCount)
}

type CommentView struct {
	*model.Comment
	ReplyCount int64       `json:"reply_count"`
	Author     *model.User `json:"author,omitempty"`
}

func (service *CommentService) ListComments(contentId string, page, pageSize int64) ([]*CommentView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	comments, total, err := db.ListComments(service.ctx, contentId, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, 0, len(comments))
	authorIds := make([]string, 0, len(comments))
	for _, comment := range comments {
		ids = append(ids, comment.Id)
		authorIds = append(authorIds, comment.UserId)
	}
	replyCounts, err := db.CountReplies(service.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	authors, err := userdb.QueryUsersByIds(service.ctx, authorIds)
	if err != nil {
		return nil, 0, err
	}
	authorById := make(map[string]*model.User, len(authors))
	for _, author := range authors {
		authorById[author.Id] = author
	}
	views := make([]*CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, &CommentView{
			Comment:    comment,
			ReplyCount: replyCounts[comment.Id],
			Author:     authorById[comment.UserId],
		})
	}
	return views, total, nil
}

func (service *CommentService) ListReplies(parentId string, page, pageSize int64) ([]*model.Comment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListReplies(service.ctx, parentId, page, pageSize)
}

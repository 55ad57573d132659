package service

import (
	"context"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/interaction/dal/db"
	"WorkTok.com/cmd/model"
	usersvc "WorkTok.com/cmd/user/service"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 互动类型到内容计数列的映射
var counterColumns = map[string]string{
	model.InteractionTypeLike:     "like_count",
	model.InteractionTypeFavorite: "favorite_count",
}

var notifyTitles = map[string]string{
	model.InteractionTypeLike:     "收到点赞",
	model.InteractionTypeFavorite: "收到收藏",
}

type InteractionService struct {
	ctx context.Context
}

func NewInteractionService(ctx context.Context) *InteractionService {
	return &InteractionService{ctx: ctx}
}

func (service *InteractionService) loadPublished(contentId string) (*model.Content, error) {
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}
	return content, nil
}

// RebindsNote 重复添加书签视为改备注 点赞/收藏仍报重复
func RebindsNote(interactionType string) bool {
	return interactionType == model.InteractionTypeBookmark
}

// Toggle actionType=1添加 actionType=2取消 返回最新状态
func (service *InteractionService) Toggle(userId, contentId, interactionType string, actionType int, note string) (bool, error) {
	switch interactionType {
	case model.InteractionTypeLike, model.InteractionTypeFavorite, model.InteractionTypeBookmark:
	default:
		return false, errno.RequestErr.WithMessage("invalid interaction type")
	}
	content, err := service.loadPublished(contentId)
	if err != nil {
		return false, err
	}

	exists, err := db.ExistsInteraction(service.ctx, userId, contentId, interactionType)
	if err != nil {
		return false, err
	}

	if actionType == 2 {
		if !exists {
			return false, nil
		}
		affected, err := db.DeleteInteraction(service.ctx, userId, contentId, interactionType)
		if err != nil {
			return false, err
		}
		if affected > 0 {
			if column, ok := counterColumns[interactionType]; ok {
				if err := contentdb.IncContentCounter(service.ctx, contentId, column, -1); err != nil {
					logrus.Warnf("dec %s failed: %v", column, err)
				}
			}
		}
		return false, nil
	}

	if exists {
		if RebindsNote(interactionType) {
			if err := db.UpdateInteractionNote(service.ctx, userId, contentId, note); err != nil {
				return true, err
			}
			return true, nil
		}
		return true, errno.DuplicateErr.WithMessage("already " + interactionType)
	}
	interaction := &model.Interaction{
		Id:        uuid.NewString(),
		UserId:    userId,
		ContentId: contentId,
		Type:      interactionType,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := db.CreateInteraction(service.ctx, interaction); err != nil {
		return false, err
	}
	if column, ok := counterColumns[interactionType]; ok {
		if err := contentdb.IncContentCounter(service.ctx, contentId, column, 1); err != nil {
			logrus.Warnf("inc %s failed: %v", column, err)
		}
	}

	usersvc.NewPreferenceService(service.ctx).RecordInteraction(userId, content, interactionType, 0)

	// 书签是私密行为 不通知作者
	if title, ok := notifyTitles[interactionType]; ok && content.CreatorId != userId {
		if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
			EventID:          uuid.NewString(),
			NotificationType: model.NotificationTypeInteraction,
			ReceiverID:       content.CreatorId,
			SenderID:         userId,
			ContentID:        contentId,
			Title:            title,
			Body:             "你的作品《" + content.Title + "》" + title,
			Timestamp:        time.Now().Unix(),
		}); err != nil {
			logrus.Warnf("send interaction notification failed: %v", err)
		}
	}
	return true, nil
}

// ListByType 点赞/收藏/书签列表 返回内容明细
func (service *InteractionService) ListByType(userId, interactionType string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	interactions, total, err := db.ListUserInteractions(service.ctx, userId, interactionType, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, 0, len(interactions))
	for _, interaction := range interactions {
		ids = append(ids, interaction.ContentId)
	}
	contents, err := contentdb.QueryContentsByIds(service.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byId := make(map[string]*model.Content, len(contents))
	for _, content := range contents {
		byId[content.Id] = content
	}
	ordered := make([]*model.Content, 0, len(ids))
	for _, id := range ids {
		if content, ok := byId[id]; ok {
			ordered = append(ordered, content)
		}
	}
	return ordered, total, nil
}

// AdminListInteractions 管理后台审查列表
func (service *InteractionService) AdminListInteractions(interactionType, contentId, userId string, page, pageSize int64) ([]*model.Interaction, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListAllInteractions(service.ctx, interactionType, contentId, userId, page, pageSize)
}

type InteractionStatus struct {
	IsLiked      bool `json:"is_liked"`
	IsFavorited  bool `json:"is_favorited"`
	IsBookmarked bool `json:"is_bookmarked"`
}

func (service *InteractionService) GetStatus(userId, contentId string) (*InteractionStatus, error) {
	status := &InteractionStatus{}
	var err error
	if status.IsLiked, err = db.ExistsInteraction(service.ctx, userId, contentId, model.InteractionTypeLike); err != nil {
		return nil, err
	}
	if status.IsFavorited, err = db.ExistsInteraction(service.ctx, userId, contentId, model.InteractionTypeFavorite); err != nil {
		return nil, err
	}
	if status.IsBookmarked, err = db.ExistsInteraction(service.ctx, userId, contentId, model.InteractionTypeBookmark); err != nil {
		return nil, err
	}
	return status, nil
}

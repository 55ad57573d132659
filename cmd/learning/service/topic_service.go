package service

import (
	"context"
	"strings"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/learning/dal/db"
	"WorkTok.com/cmd/model"
	playbackdb "WorkTok.com/cmd/playback/dal/db"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
)

type TopicService struct {
	ctx context.Context
}

func NewTopicService(ctx context.Context) *TopicService {
	return &TopicService{ctx: ctx}
}

type SaveTopicParam struct {
	Name        string
	Description string
	CoverUrl    string
}

func (service *TopicService) CreateTopic(creatorId string, param *SaveTopicParam) (*model.Topic, error) {
	if strings.TrimSpace(param.Name) == "" {
		return nil, errno.RequestErr.WithMessage("name is required")
	}
	topic := &model.Topic{
		Id:          uuid.NewString(),
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
		CreatorId:   creatorId,
		IsActive:    1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreateTopic(service.ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (service *TopicService) UpdateTopic(topicId string, param *SaveTopicParam) (*model.Topic, error) {
	topic, err := db.QueryTopicById(service.ctx, topicId)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errno.RequestErr.WithMessage("topic not found")
	}
	updates := map[string]interface{}{}
	if param.Name != "" {
		updates["name"] = param.Name
	}
	if param.Description != "" {
		updates["description"] = param.Description
	}
	if param.CoverUrl != "" {
		updates["cover_url"] = param.CoverUrl
	}
	if len(updates) > 0 {
		if err := db.UpdateTopic(service.ctx, topicId, updates); err != nil {
			return nil, err
		}
	}
	return db.QueryTopicById(service.ctx, topicId)
}

// SetTopicActive 下线专题不删数据
func (service *TopicService) SetTopicActive(topicId string, active bool) error {
	isActive := 0
	if active {
		isActive = 1
	}
	return db.UpdateTopic(service.ctx, topicId, map[string]interface{}{"is_active": isActive})
}

func (service *TopicService) ListTopics(onlyActive bool, page, pageSize int64) ([]*model.Topic, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListTopics(service.ctx, onlyActive, page, pageSize)
}

// AddContent 只有已发布内容可进专题
func (service *TopicService) AddContent(topicId, contentId string) error {
	topic, err := db.QueryTopicById(service.ctx, topicId)
	if err != nil {
		return err
	}
	if topic == nil {
		return errno.RequestErr.WithMessage("topic not found")
	}
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return errno.ContentNotFoundErr
	}
	existing, err := db.ListTopicContentIds(service.ctx, topicId)
	if err != nil {
		return err
	}
	for _, id := range existing {
		if id == contentId {
			return errno.DuplicateErr.WithMessage("content already in topic")
		}
	}
	return db.AddTopicContent(service.ctx, topicId, contentId)
}

func (service *TopicService) RemoveContent(topicId, contentId string) error {
	return db.RemoveTopicContent(service.ctx, topicId, contentId)
}

func (service *TopicService) Reorder(topicId string, contentIds []string) error {
	if len(contentIds) == 0 {
		return errno.RequestErr.WithMessage("content_ids is required")
	}
	return db.ReorderTopicContents(service.ctx, topicId, contentIds)
}

type TopicDetail struct {
	*model.Topic
	Contents       []*model.Content `json:"contents"`
	CompletedCount int64            `json:"completed_count"`
}

// GetTopicDetail 带进度 userId为空时不算完成数
func (service *TopicService) GetTopicDetail(topicId, userId string) (*TopicDetail, error) {
	topic, err := db.QueryTopicById(service.ctx, topicId)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errno.RequestErr.WithMessage("topic not found")
	}
	ids, err := db.ListTopicContentIds(service.ctx, topicId)
	if err != nil {
		return nil, err
	}
	contents, err := contentdb.QueryContentsByIds(service.ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]*model.Content, len(contents))
	for _, content := range contents {
		byId[content.Id] = content
	}
	ordered := make([]*model.Content, 0, len(ids))
	for _, id := range ids {
		if content, ok := byId[id]; ok && content.Status == model.ContentStatusPublished {
			ordered = append(ordered, content)
		}
	}
	detail := &TopicDetail{Topic: topic, Contents: ordered}
	if userId != "" {
		completed, err := playbackdb.CountCompletedIn(service.ctx, userId, ids)
		if err != nil {
			return nil, err
		}
		detail.CompletedCount = completed
	}
	return detail, nil
}

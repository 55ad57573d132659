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

type CollectionService struct {
	ctx context.Context
}

func NewCollectionService(ctx context.Context) *CollectionService {
	return &CollectionService{ctx: ctx}
}

type SaveCollectionParam struct {
	Name        string
	Description string
	CoverUrl    string
}

func (service *CollectionService) CreateCollection(creatorId string, param *SaveCollectionParam) (*model.Collection, error) {
	if strings.TrimSpace(param.Name) == "" {
		return nil, errno.RequestErr.WithMessage("name is required")
	}
	collection := &model.Collection{
		Id:          uuid.NewString(),
		Name:        param.Name,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
		CreatorId:   creatorId,
		IsActive:    1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreateCollection(service.ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (service *CollectionService) UpdateCollection(collectionId string, param *SaveCollectionParam) (*model.Collection, error) {
	collection, err := db.QueryCollectionById(service.ctx, collectionId)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, errno.RequestErr.WithMessage("collection not found")
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
		if err := db.UpdateCollection(service.ctx, collectionId, updates); err != nil {
			return nil, err
		}
	}
	return db.QueryCollectionById(service.ctx, collectionId)
}

// SetCollectionActive 下线合集不删数据
func (service *CollectionService) SetCollectionActive(collectionId string, active bool) error {
	isActive := 0
	if active {
		isActive = 1
	}
	return db.UpdateCollection(service.ctx, collectionId, map[string]interface{}{"is_active": isActive})
}

func (service *CollectionService) Reorder(collectionId string, contentIds []string) error {
	if len(contentIds) == 0 {
		return errno.RequestErr.WithMessage("content_ids is required")
	}
	return db.ReorderCollectionContents(service.ctx, collectionId, contentIds)
}

func (service *CollectionService) ListCollections(onlyActive bool, page, pageSize int64) ([]*model.Collection, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListCollections(service.ctx, onlyActive, page, pageSize)
}

func (service *CollectionService) AddContent(collectionId, contentId string) error {
	collection, err := db.QueryCollectionById(service.ctx, collectionId)
	if err != nil {
		return err
	}
	if collection == nil {
		return errno.RequestErr.WithMessage("collection not found")
	}
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return errno.ContentNotFoundErr
	}
	existing, err := db.ListCollectionContentIds(service.ctx, collectionId)
	if err != nil {
		return err
	}
	for _, id := range existing {
		if id == contentId {
			return errno.DuplicateErr.WithMessage("content already in collection")
		}
	}
	return db.AddCollectionContent(service.ctx, collectionId, contentId)
}

func (service *CollectionService) RemoveContent(collectionId, contentId string) error {
	return db.RemoveCollectionContent(service.ctx, collectionId, contentId)
}

type CollectionDetail struct {
	*model.Collection
	Contents       []*model.Content `json:"contents"`
	CompletedCount int64            `json:"completed_count"`
	IsCompleted    bool             `json:"is_completed"`
}

// GetCollectionDetail 全部完成时累计合集完成次数
func (service *CollectionService) GetCollectionDetail(collectionId, userId string) (*CollectionDetail, error) {
	collection, err := db.QueryCollectionById(service.ctx, collectionId)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, errno.RequestErr.WithMessage("collection not found")
	}
	ids, err := db.ListCollectionContentIds(service.ctx, collectionId)
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
	detail := &CollectionDetail{Collection: collection, Contents: ordered}
	if userId != "" && len(ids) > 0 {
		completed, err := playbackdb.CountCompletedIn(service.ctx, userId, ids)
		if err != nil {
			return nil, err
		}
		detail.CompletedCount = completed
		detail.IsCompleted = completed >= int64(len(ids))
	}
	return detail, nil
}

// NextContent 合集顺序播放的下一条 末尾返回nil
func (service *CollectionService) NextContent(collectionId, currentContentId string) (*model.Content, error) {
	collection, err := db.QueryCollectionById(service.ctx, collectionId)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, errno.RequestErr.WithMessage("collection not found")
	}
	nextId, err := db.NextCollectionContentId(service.ctx, collectionId, currentContentId)
	if err != nil {
		return nil, err
	}
	if nextId == "" {
		return nil, nil
	}
	content, err := contentdb.QueryContentById(service.ctx, nextId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, nil
	}
	return content, nil
}

// MarkCompleted 客户端在合集最后一条完播后调用
func (service *CollectionService) MarkCompleted(collectionId, userId string) error {
	detail, err := service.GetCollectionDetail(collectionId, userId)
	if err != nil {
		return err
	}
	if !detail.IsCompleted {
		return errno.StatusConflictErr.WithMessage("collection not fully completed")
	}
	return db.IncCollectionCompletion(service.ctx, collectionId)
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"WorkTok.com/cmd/model"
	tagdb "WorkTok.com/cmd/tag/dal/db"
	"WorkTok.com/cmd/user/dal/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 互动行为对偏好的贡献权重 观看按完播率折算
const (
	ViewWeight     = 1.0
	LikeWeight     = 2.0
	FavoriteWeight = 3.0
	CommentWeight  = 2.5
	ShareWeight    = 3.5
)

type PreferenceService struct {
	ctx context.Context
}

func NewPreferenceService(ctx context.Context) *PreferenceService {
	return &PreferenceService{ctx: ctx}
}

func decodeWeights(raw string) map[string]float64 {
	weights := make(map[string]float64)
	if raw == "" {
		return weights
	}
	if err := json.Unmarshal([]byte(raw), &weights); err != nil {
		return make(map[string]float64)
	}
	return weights
}

func encodeWeights(weights map[string]float64) string {
	data, err := json.Marshal(weights)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// InteractionWeight 行为类型对应的偏好增量 view按完播率缩放
func InteractionWeight(action string, completionRate float64) float64 {
	switch action {
	case "view":
		return ViewWeight * completionRate
	case model.InteractionTypeLike:
		return LikeWeight
	case model.InteractionTypeFavorite:
		return FavoriteWeight
	case model.InteractionTypeComment:
		return CommentWeight
	case model.InteractionTypeShare:
		return ShareWeight
	default:
		return 0
	}
}

// RecordInteraction 互动发生后同步更新偏好画像 失败只记日志不影响主流程
func (service *PreferenceService) RecordInteraction(userId string, content *model.Content, action string, completionRate float64) {
	weight := InteractionWeight(action, completionRate)
	if weight <= 0 || content == nil {
		return
	}
	pref, err := db.GetUserPreference(service.ctx, userId)
	if err != nil {
		logrus.WithField("user_id", userId).Warnf("load preference failed: %v", err)
		return
	}
	if pref == nil {
		pref = &model.UserPreference{
			Id:        uuid.NewString(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
	}

	tags, err := tagdb.ListContentTags(service.ctx, content.Id)
	if err != nil {
		logrus.WithField("content_id", content.Id).Warnf("load content tags failed: %v", err)
		return
	}
	roleWeights := decodeWeights(pref.RoleTagWeights)
	topicWeights := decodeWeights(pref.TopicTagWeights)
	for _, tag := range tags {
		switch tag.Category {
		case model.TagCategoryRole:
			roleWeights[tag.Name] += weight
		case model.TagCategoryTopic:
			topicWeights[tag.Name] += weight
		}
	}
	contentTypeWeights := decodeWeights(pref.ContentTypeWeights)
	if content.ContentType != "" {
		contentTypeWeights[content.ContentType] += weight
	}
	creatorWeights := decodeWeights(pref.CreatorWeights)
	creatorWeights[content.CreatorId] += weight

	pref.RoleTagWeights = encodeWeights(roleWeights)
	pref.TopicTagWeights = encodeWeights(topicWeights)
	pref.ContentTypeWeights = encodeWeights(contentTypeWeights)
	pref.CreatorWeights = encodeWeights(creatorWeights)

	switch action {
	case "view":
		pref.TotalWatchCount++
		pref.TotalWatchDuration += completionRate * float64(content.Duration)
	case model.InteractionTypeLike:
		pref.TotalLikeCount++
	case model.InteractionTypeFavorite:
		pref.TotalFavoriteCount++
	case model.InteractionTypeComment:
		pref.TotalCommentCount++
	case model.InteractionTypeShare:
		pref.TotalShareCount++
	}

	if err := db.SaveUserPreference(service.ctx, pref); err != nil {
		logrus.WithField("user_id", userId).Warnf("save preference failed: %v", err)
	}
}

func (service *PreferenceService) GetPreference(userId string) (*model.UserPreference, error) {
	return db.GetUserPreference(service.ctx, userId)
}

package service

import (
	"context"
	"encoding/json"
	"sort"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/learning/dal/db"
	"WorkTok.com/cmd/model"
	playbackdb "WorkTok.com/cmd/playback/dal/db"
	userdb "WorkTok.com/cmd/user/dal/db"
	"github.com/sirupsen/logrus"
)

const (
	PlanTopicLimit      = 5
	PlanCollectionLimit = 5
	PlanContentLimit    = 10
)

type PlanService struct {
	ctx context.Context
}

func NewPlanService(ctx context.Context) *PlanService {
	return &PlanService{ctx: ctx}
}

type LearningPlan struct {
	Topics      []*model.Topic      `json:"topics"`
	Collections []*model.Collection `json:"collections"`
	Contents    []*model.Content    `json:"contents"`
}

// preferredContentTypes 偏好权重降序的内容类型 只取正权重
func preferredContentTypes(raw string) []string {
	weights := map[string]float64{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &weights); err != nil {
			return nil
		}
	}
	types := make([]string, 0, len(weights))
	for contentType, weight := range weights {
		if weight > 0 {
			types = append(types, contentType)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		if weights[types[i]] != weights[types[j]] {
			return weights[types[i]] > weights[types[j]]
		}
		return types[i] < types[j]
	})
	return types
}

// GetPlan 热门专题与合集打底 再按偏好补未看过的内容
func (service *PlanService) GetPlan(userId string) (*LearningPlan, error) {
	topics, err := db.ListTopTopics(service.ctx, PlanTopicLimit)
	if err != nil {
		return nil, err
	}
	collections, err := db.ListTopCollections(service.ctx, PlanCollectionLimit)
	if err != nil {
		return nil, err
	}

	watchedIds, err := playbackdb.ListWatchedContentIds(service.ctx, userId)
	if err != nil {
		logrus.Warnf("load watch history failed: %v", err)
		watchedIds = nil
	}
	var contentTypes []string
	pref, err := userdb.GetUserPreference(service.ctx, userId)
	if err != nil {
		logrus.Warnf("load preference failed: %v", err)
	} else if pref != nil {
		contentTypes = preferredContentTypes(pref.ContentTypeWeights)
	}
	contents, err := contentdb.ListUnwatchedPublished(service.ctx, watchedIds, contentTypes, PlanContentLimit)
	if err != nil {
		return nil, err
	}
	// 按偏好过滤后不足时放开类型限制补齐
	if len(contents) < PlanContentLimit && len(contentTypes) > 0 {
		contents, err = contentdb.ListUnwatchedPublished(service.ctx, watchedIds, nil, PlanContentLimit)
		if err != nil {
			return nil, err
		}
	}
	return &LearningPlan{Topics: topics, Collections: collections, Contents: contents}, nil
}

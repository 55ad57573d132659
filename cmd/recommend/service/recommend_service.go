package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	playbackdb "WorkTok.com/cmd/playback/dal/db"
	tagdb "WorkTok.com/cmd/tag/dal/db"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/cache"
	"github.com/sirupsen/logrus"
)

const (
	candidatePoolSize = 500
	maxFeaturedInFeed = 5
	feedWindowDays    = 30
)

type RecommendService struct {
	ctx context.Context
}

func NewRecommendService(ctx context.Context) *RecommendService {
	return &RecommendService{ctx: ctx}
}

func decodeWeightMap(raw string) map[string]float64 {
	weights := make(map[string]float64)
	if raw == "" {
		return weights
	}
	if err := json.Unmarshal([]byte(raw), &weights); err != nil {
		return make(map[string]float64)
	}
	return weights
}

func (service *RecommendService) loadPreference(userId string) *PreferenceWeights {
	pref, err := userdb.GetUserPreference(service.ctx, userId)
	if err != nil {
		logrus.Warnf("load preference failed: %v", err)
	}
	weights := &PreferenceWeights{
		RoleTags:     make(map[string]float64),
		TopicTags:    make(map[string]float64),
		ContentTypes: make(map[string]float64),
		Creators:     make(map[string]float64),
	}
	if pref != nil {
		weights.RoleTags = decodeWeightMap(pref.RoleTagWeights)
		weights.TopicTags = decodeWeightMap(pref.TopicTagWeights)
		weights.ContentTypes = decodeWeightMap(pref.ContentTypeWeights)
		weights.Creators = decodeWeightMap(pref.CreatorWeights)
	}
	return weights
}

// GetFeed 个性化信息流 首页第一页顶部插入精选位
func (service *RecommendService) GetFeed(userId string, page, pageSize int64) ([]*model.Content, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}

	if ids, err := cache.GetRecommendCache(service.ctx, userId, int(page), int(pageSize)); err == nil && len(ids) > 0 {
		contents, err := contentdb.QueryContentsByIds(service.ctx, ids)
		if err == nil {
			return orderByIds(contents, ids), nil
		}
	}

	now := time.Now()
	windowStart := now.AddDate(0, 0, -feedWindowDays)
	watched, err := playbackdb.ListWatchedContentIds(service.ctx, userId)
	if err != nil {
		logrus.Warnf("load watched ids failed: %v", err)
	}
	candidates, err := contentdb.ListCandidateContents(service.ctx, watched, &windowStart, candidatePoolSize)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		// 窗口内全部看完时退化为重播近期内容
		candidates, err = contentdb.ListCandidateContents(service.ctx, nil, &windowStart, candidatePoolSize)
		if err != nil {
			return nil, err
		}
	}

	candidateIds := make([]string, 0, len(candidates))
	for _, content := range candidates {
		candidateIds = append(candidateIds, content.Id)
	}
	tagsByContent, err := tagdb.ListContentTagsBatch(service.ctx, candidateIds)
	if err != nil {
		logrus.Warnf("load content tags failed: %v", err)
		tagsByContent = map[string][]*model.Tag{}
	}

	pref := service.loadPreference(userId)
	type scored struct {
		content *model.Content
		score   float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, content := range candidates {
		ranked = append(ranked, scored{
			content: content,
			score:   ScoreContent(content, tagsByContent[content.Id], pref, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	ordered := make([]*model.Content, 0, len(ranked))
	for _, item := range ranked {
		ordered = append(ordered, item.content)
	}

	// 精选位在翻页前合并 跨页不出现重复
	featured, err := contentdb.ListFeaturedContents(service.ctx, "", maxFeaturedInFeed)
	if err != nil {
		logrus.Warnf("load featured failed: %v", err)
		featured = nil
	}
	merged := MergeFeatured(featured, ordered)

	offset := int((page - 1) * pageSize)
	if offset >= len(merged) {
		return []*model.Content{}, nil
	}
	end := offset + int(pageSize)
	if end > len(merged) {
		end = len(merged)
	}
	feed := merged[offset:end]

	ids := make([]string, 0, len(feed))
	for _, content := range feed {
		ids = append(ids, content.Id)
	}
	if err := cache.SetRecommendCache(service.ctx, userId, int(page), int(pageSize), ids); err != nil {
		logrus.Warnf("set recommend cache failed: %v", err)
	}
	return feed, nil
}

// MergeFeatured 精选内容置顶 与算法结果全局去重
func MergeFeatured(featured, ranked []*model.Content) []*model.Content {
	if len(featured) == 0 {
		return ranked
	}
	seen := make(map[string]bool, len(featured))
	merged := make([]*model.Content, 0, len(featured)+len(ranked))
	for _, content := range featured {
		seen[content.Id] = true
		merged = append(merged, content)
	}
	for _, content := range ranked {
		if !seen[content.Id] {
			merged = append(merged, content)
		}
	}
	return merged
}

// GetSimilar 同标签相似内容 按推荐分排序
func (service *RecommendService) GetSimilar(contentId string, limit int) ([]*model.Content, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	baseTags, err := tagdb.ListContentTags(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	candidates, err := contentdb.ListCandidateContents(service.ctx, []string{contentId}, nil, candidatePoolSize)
	if err != nil {
		return nil, err
	}
	candidateIds := make([]string, 0, len(candidates))
	for _, content := range candidates {
		candidateIds = append(candidateIds, content.Id)
	}
	tagsByContent, err := tagdb.ListContentTagsBatch(service.ctx, candidateIds)
	if err != nil {
		return nil, err
	}
	baseNames := make(map[string]bool, len(baseTags))
	for _, tag := range baseTags {
		baseNames[tag.Name] = true
	}
	type scored struct {
		content *model.Content
		overlap int
	}
	ranked := make([]scored, 0)
	for _, content := range candidates {
		overlap := 0
		for _, tag := range tagsByContent[content.Id] {
			if baseNames[tag.Name] {
				overlap++
			}
		}
		if overlap > 0 {
			ranked = append(ranked, scored{content: content, overlap: overlap})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].overlap != ranked[j].overlap {
			return ranked[i].overlap > ranked[j].overlap
		}
		return popularityScore(ranked[i].content) > popularityScore(ranked[j].content)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	result := make([]*model.Content, 0, len(ranked))
	for _, item := range ranked {
		result = append(result, item.content)
	}
	return result, nil
}

func orderByIds(contents []*model.Content, ids []string) []*model.Content {
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
	return ordered
}

package service

import (
	"math"
	"time"

	"WorkTok.com/cmd/model"
)

// 推荐总分的线性加权系数
const (
	RoleTagFactor     = 0.30
	TopicTagFactor    = 0.25
	ContentTypeFactor = 0.15
	CreatorFactor     = 0.15
	RecencyFactor     = 0.15
	PopularityFactor  = 0.10

	// 无画像时各维度的中性分
	NeutralScore = 0.5

	RecencyHalfLifeDays = 30.0
)

// PreferenceWeights 已解码的偏好画像 空map表示无画像
type PreferenceWeights struct {
	RoleTags     map[string]float64
	TopicTags    map[string]float64
	ContentTypes map[string]float64
	Creators     map[string]float64
}

// matchScore 单值维度(内容类型/创作者) 取命中项按最大权重归一化
// 画像为空给中性分 有画像但未命中给0
func matchScore(weights map[string]float64, keys []string) float64 {
	if len(weights) == 0 {
		return NeutralScore
	}
	var max float64
	for _, w := range weights {
		if w > max {
			max = w
		}
	}
	if max <= 0 {
		return NeutralScore
	}
	var best float64
	for _, key := range keys {
		if w, ok := weights[key]; ok && w/max > best {
			best = w / max
		}
	}
	return best
}

// topicScore 标签集维度 命中权重和除以逐标签max(w,1)的和 封顶1
// 画像为空或内容无标签给中性分
func topicScore(weights map[string]float64, keys []string) float64 {
	if len(weights) == 0 || len(keys) == 0 {
		return NeutralScore
	}
	var matched, total float64
	for _, key := range keys {
		w := weights[key]
		matched += w
		if w < 1 {
			w = 1
		}
		total += w
	}
	score := matched / total
	if score > 1 {
		score = 1
	}
	return score
}

// recencyScore 指数衰减 30天约衰减到0.37
func recencyScore(publishedAt *time.Time, now time.Time) float64 {
	if publishedAt == nil {
		return 0
	}
	days := now.Sub(*publishedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Exp(-days / RecencyHalfLifeDays)
}

// popularityScore 加权互动量取对数 千级互动封顶
func popularityScore(content *model.Content) float64 {
	weighted := float64(content.ViewCount)*0.1 +
		float64(content.LikeCount)*0.3 +
		float64(content.FavoriteCount)*0.3 +
		float64(content.CommentCount)*0.2 +
		float64(content.ShareCount)*0.1
	if weighted <= 0 {
		return 0
	}
	score := math.Log10(weighted+1) / 3
	if score > 1 {
		score = 1
	}
	return score
}

// ScoreContent 单条内容的推荐分
func ScoreContent(content *model.Content, tags []*model.Tag, pref *PreferenceWeights, now time.Time) float64 {
	var roleNames, topicNames []string
	for _, tag := range tags {
		switch tag.Category {
		case model.TagCategoryRole:
			roleNames = append(roleNames, tag.Name)
		case model.TagCategoryTopic:
			topicNames = append(topicNames, tag.Name)
		}
	}
	score := RoleTagFactor*topicScore(pref.RoleTags, roleNames) +
		TopicTagFactor*topicScore(pref.TopicTags, topicNames) +
		ContentTypeFactor*matchScore(pref.ContentTypes, []string{content.ContentType}) +
		CreatorFactor*matchScore(pref.Creators, []string{content.CreatorId}) +
		RecencyFactor*recencyScore(content.PublishedAt, now) +
		PopularityFactor*popularityScore(content)
	return score
}

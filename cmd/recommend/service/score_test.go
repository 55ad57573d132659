package service

import (
	"math"
	"testing"
	"time"

	"WorkTok.com/cmd/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchScore(t *testing.T) {
	t.Run("EmptyProfile", func(t *testing.T) {
		if got := matchScore(nil, []string{"研发"}); got != NeutralScore {
			t.Errorf("无画像应返回中性分, got %v", got)
		}
		if got := matchScore(map[string]float64{}, []string{"研发"}); got != NeutralScore {
			t.Errorf("空画像应返回中性分, got %v", got)
		}
	})

	t.Run("NoHit", func(t *testing.T) {
		weights := map[string]float64{"销售": 4.0}
		if got := matchScore(weights, []string{"研发"}); got != 0 {
			t.Errorf("有画像未命中应为0, got %v", got)
		}
	})

	t.Run("BestHitNormalized", func(t *testing.T) {
		weights := map[string]float64{"销售": 4.0, "研发": 2.0}
		if got := matchScore(weights, []string{"研发"}); !almostEqual(got, 0.5) {
			t.Errorf("命中项按最大权重归一化, want 0.5 got %v", got)
		}
		if got := matchScore(weights, []string{"研发", "销售"}); !almostEqual(got, 1.0) {
			t.Errorf("多个命中取最高, want 1.0 got %v", got)
		}
	})

	t.Run("AllZeroWeights", func(t *testing.T) {
		weights := map[string]float64{"销售": 0}
		if got := matchScore(weights, []string{"销售"}); got != NeutralScore {
			t.Errorf("权重全为0视同无画像, got %v", got)
		}
	})
}

func TestTopicScore(t *testing.T) {
	t.Run("EmptyProfile", func(t *testing.T) {
		if got := topicScore(nil, []string{"新人培训"}); got != NeutralScore {
			t.Errorf("无画像应返回中性分, got %v", got)
		}
	})

	t.Run("NoTags", func(t *testing.T) {
		weights := map[string]float64{"新人培训": 5.0}
		if got := topicScore(weights, nil); got != NeutralScore {
			t.Errorf("内容无标签应返回中性分, got %v", got)
		}
	})

	t.Run("PartialHit", func(t *testing.T) {
		// 命中5 未命中标签按1计入分母: 5/(5+1)
		weights := map[string]float64{"新人培训": 5.0}
		if got := topicScore(weights, []string{"新人培训", "产品介绍"}); !almostEqual(got, 5.0/6.0) {
			t.Errorf("want %v got %v", 5.0/6.0, got)
		}
	})

	t.Run("FullHit", func(t *testing.T) {
		weights := map[string]float64{"新人培训": 5.0, "企业文化": 2.0}
		if got := topicScore(weights, []string{"新人培训", "企业文化"}); !almostEqual(got, 1.0) {
			t.Errorf("全命中应为1, got %v", got)
		}
	})

	t.Run("LowWeightHit", func(t *testing.T) {
		// 权重不足1的命中分母按1计
		weights := map[string]float64{"新人培训": 0.5}
		if got := topicScore(weights, []string{"新人培训"}); !almostEqual(got, 0.5) {
			t.Errorf("want 0.5 got %v", got)
		}
	})

	t.Run("NoHit", func(t *testing.T) {
		weights := map[string]float64{"销售": 4.0}
		if got := topicScore(weights, []string{"研发"}); got != 0 {
			t.Errorf("有画像未命中应为0, got %v", got)
		}
	})
}

func TestRecencyScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("NilPublishedAt", func(t *testing.T) {
		if got := recencyScore(nil, now); got != 0 {
			t.Errorf("未发布时间应为0, got %v", got)
		}
	})

	t.Run("JustPublished", func(t *testing.T) {
		if got := recencyScore(&now, now); !almostEqual(got, 1.0) {
			t.Errorf("刚发布应为1, got %v", got)
		}
	})

	t.Run("ThirtyDaysOld", func(t *testing.T) {
		old := now.AddDate(0, 0, -30)
		got := recencyScore(&old, now)
		want := math.Exp(-1)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("30天前 want %v got %v", want, got)
		}
	})

	t.Run("FuturePublishedAt", func(t *testing.T) {
		future := now.Add(time.Hour)
		if got := recencyScore(&future, now); !almostEqual(got, 1.0) {
			t.Errorf("未来时间按0天算, got %v", got)
		}
	})
}

func TestPopularityScore(t *testing.T) {
	t.Run("NoInteractions", func(t *testing.T) {
		if got := popularityScore(&model.Content{}); got != 0 {
			t.Errorf("无互动应为0, got %v", got)
		}
	})

	t.Run("Capped", func(t *testing.T) {
		content := &model.Content{ViewCount: 10_000_000}
		if got := popularityScore(content); got != 1 {
			t.Errorf("高互动封顶为1, got %v", got)
		}
	})

	t.Run("WeightedSum", func(t *testing.T) {
		// 加权和 = 100*(0.1+0.3+0.3+0.2+0.1) = 100
		content := &model.Content{
			ViewCount:     100,
			LikeCount:     100,
			FavoriteCount: 100,
			CommentCount:  100,
			ShareCount:    100,
		}
		want := math.Log10(101) / 3
		if got := popularityScore(content); math.Abs(got-want) > 1e-9 {
			t.Errorf("want %v got %v", want, got)
		}
	})
}

func TestScoreContent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ColdStart", func(t *testing.T) {
		// 无画像 刚发布 无互动: 0.3*0.5 + 0.25*0.5 + 0.15*0.5 + 0.15*0.5 + 0.15*1 + 0
		content := &model.Content{ContentType: "实操演示", CreatorId: "u1", PublishedAt: &now}
		pref := &PreferenceWeights{}
		got := ScoreContent(content, nil, pref, now)
		want := 0.85*NeutralScore + RecencyFactor
		if !almostEqual(got, want) {
			t.Errorf("冷启动得分 want %v got %v", want, got)
		}
	})

	t.Run("FullMatchBeatsNoMatch", func(t *testing.T) {
		content := &model.Content{ContentType: "实操演示", CreatorId: "u1", PublishedAt: &now}
		tags := []*model.Tag{
			{Name: "研发", Category: model.TagCategoryRole},
			{Name: "新人培训", Category: model.TagCategoryTopic},
		}
		matched := &PreferenceWeights{
			RoleTags:     map[string]float64{"研发": 3},
			TopicTags:    map[string]float64{"新人培训": 2},
			ContentTypes: map[string]float64{"实操演示": 1},
			Creators:     map[string]float64{"u1": 5},
		}
		unmatched := &PreferenceWeights{
			RoleTags:     map[string]float64{"销售": 3},
			TopicTags:    map[string]float64{"产品介绍": 2},
			ContentTypes: map[string]float64{"课件讲解": 1},
			Creators:     map[string]float64{"u2": 5},
		}
		high := ScoreContent(content, tags, matched, now)
		low := ScoreContent(content, tags, unmatched, now)
		if high <= low {
			t.Errorf("画像全命中应高于全不命中, high=%v low=%v", high, low)
		}
		wantHigh := RoleTagFactor + TopicTagFactor + ContentTypeFactor + CreatorFactor + RecencyFactor
		if !almostEqual(high, wantHigh) {
			t.Errorf("全命中得分 want %v got %v", wantHigh, high)
		}
	})

	t.Run("RecencyOrdering", func(t *testing.T) {
		old := now.AddDate(0, 0, -90)
		fresh := &model.Content{PublishedAt: &now}
		stale := &model.Content{PublishedAt: &old}
		pref := &PreferenceWeights{}
		if ScoreContent(fresh, nil, pref, now) <= ScoreContent(stale, nil, pref, now) {
			t.Error("其余条件相同时新内容得分应更高")
		}
	})
}

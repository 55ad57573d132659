package service

import (
	"testing"

	"WorkTok.com/cmd/model"
	"github.com/stretchr/testify/assert"
)

func TestInteractionWeight(t *testing.T) {
	t.Run("ViewScalesWithCompletion", func(t *testing.T) {
		assert.Equal(t, 0.0, InteractionWeight("view", 0))
		assert.Equal(t, 0.5, InteractionWeight("view", 0.5))
		assert.Equal(t, 1.0, InteractionWeight("view", 1.0))
	})

	t.Run("FixedWeights", func(t *testing.T) {
		assert.Equal(t, LikeWeight, InteractionWeight(model.InteractionTypeLike, 0))
		assert.Equal(t, FavoriteWeight, InteractionWeight(model.InteractionTypeFavorite, 0))
		assert.Equal(t, CommentWeight, InteractionWeight(model.InteractionTypeComment, 0))
		assert.Equal(t, ShareWeight, InteractionWeight(model.InteractionTypeShare, 0))
	})

	t.Run("WeightOrdering", func(t *testing.T) {
		// 分享 > 收藏 > 评论 > 点赞 > 完整观看
		assert.Greater(t, ShareWeight, FavoriteWeight)
		assert.Greater(t, FavoriteWeight, CommentWeight)
		assert.Greater(t, CommentWeight, LikeWeight)
		assert.Greater(t, LikeWeight, ViewWeight*1.0)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		assert.Equal(t, 0.0, InteractionWeight("BOOKMARK", 1.0))
		assert.Equal(t, 0.0, InteractionWeight("", 1.0))
	})
}

func TestWeightsCodec(t *testing.T) {
	t.Run("EmptyRaw", func(t *testing.T) {
		weights := decodeWeights("")
		assert.NotNil(t, weights)
		assert.Empty(t, weights)
	})

	t.Run("BrokenJSON", func(t *testing.T) {
		weights := decodeWeights("{broken")
		assert.NotNil(t, weights)
		assert.Empty(t, weights)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := map[string]float64{"研发": 3.5, "新人培训": 2.0}
		out := decodeWeights(encodeWeights(in))
		assert.Equal(t, in, out)
	})
}

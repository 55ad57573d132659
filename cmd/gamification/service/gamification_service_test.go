package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestLeaderboardScore(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		if got := LeaderboardScore(0, 0, 0); got != 0 {
			t.Errorf("无学习行为得分应为0, got %v", got)
		}
	})

	t.Run("WatchedOnly", func(t *testing.T) {
		if got := LeaderboardScore(3, 0, 0); got != 30 {
			t.Errorf("观看3条应得30分, got %v", got)
		}
	})

	t.Run("WatchTimePerMinute", func(t *testing.T) {
		if got := LeaderboardScore(0, 600, 0); got != 10 {
			t.Errorf("600秒观看应得10分, got %v", got)
		}
	})

	t.Run("CreatedContent", func(t *testing.T) {
		if got := LeaderboardScore(0, 0, 2); got != 100 {
			t.Errorf("发布2条应得100分, got %v", got)
		}
	})

	t.Run("Combined", func(t *testing.T) {
		// 5*10 + 1800/60 + 1*50 = 130
		if got := LeaderboardScore(5, 1800, 1); got != 130 {
			t.Errorf("组合得分 want 130 got %v", got)
		}
	})

	t.Run("CreationOutweighsWatching", func(t *testing.T) {
		creator := LeaderboardScore(0, 0, 1)
		watcher := LeaderboardScore(4, 0, 0)
		if creator <= watcher {
			t.Errorf("单条发布应高于4次观看, creator=%v watcher=%v", creator, watcher)
		}
	})
}

func TestMissingDefaults(t *testing.T) {
	t.Run("EmptyTableSeedsAll", func(t *testing.T) {
		if got := MissingDefaults(nil); len(got) != len(DefaultAchievements()) {
			t.Errorf("空表应播种全部预置成就, got %d", len(got))
		}
	})

	t.Run("ExistingSkipped", func(t *testing.T) {
		existing := []*model.Achievement{
			{Type: model.AchievementTypeLearning, RequirementValue: 10},
			{Type: model.AchievementTypeStreak, RequirementValue: 7},
		}
		missing := MissingDefaults(existing)
		want := len(DefaultAchievements()) - 2
		if len(missing) != want {
			t.Fatalf("已存在的门槛应跳过, got %d want %d", len(missing), want)
		}
		for _, achievement := range missing {
			if achievement.Type == model.AchievementTypeLearning && achievement.RequirementValue == 10 {
				t.Error("完成10的成就不应重复播种")
			}
		}
	})

	t.Run("FullSeedIsIdempotent", func(t *testing.T) {
		if got := MissingDefaults(DefaultAchievements()); len(got) != 0 {
			t.Errorf("重复播种不应产生新记录, got %d", len(got))
		}
	})

	t.Run("CustomAchievementDoesNotBlockSeed", func(t *testing.T) {
		existing := []*model.Achievement{
			{Type: model.AchievementTypeLearning, RequirementValue: 42},
		}
		if got := MissingDefaults(existing); len(got) != len(DefaultAchievements()) {
			t.Errorf("自定义门槛不影响预置播种, got %d", len(got))
		}
	})
}

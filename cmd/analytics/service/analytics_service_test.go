package service

import (
	"testing"
)

func performanceRows() []*ContentPerformance {
	return []*ContentPerformance{
		{ContentId: "a", ViewCount: 10, LikeCount: 5, AvgCompletionRate: 0.9, AvgWatchTimeSec: 30},
		{ContentId: "b", ViewCount: 30, LikeCount: 1, AvgCompletionRate: 0.2, AvgWatchTimeSec: 90},
		{ContentId: "c", ViewCount: 20, LikeCount: 8, AvgCompletionRate: 0.5, AvgWatchTimeSec: 60},
	}
}

func firstId(rows []*ContentPerformance) string {
	return rows[0].ContentId
}

func TestSortPerformance(t *testing.T) {
	t.Run("DefaultByViews", func(t *testing.T) {
		rows := performanceRows()
		sortPerformance(rows, "")
		if firstId(rows) != "b" {
			t.Errorf("默认应按播放量排序, got %s", firstId(rows))
		}
	})

	t.Run("ByLikes", func(t *testing.T) {
		rows := performanceRows()
		sortPerformance(rows, "likes")
		if firstId(rows) != "c" {
			t.Errorf("按点赞排序首位应为c, got %s", firstId(rows))
		}
	})

	t.Run("ByCompletionRate", func(t *testing.T) {
		rows := performanceRows()
		sortPerformance(rows, "completion_rate")
		if firstId(rows) != "a" {
			t.Errorf("按完播率排序首位应为a, got %s", firstId(rows))
		}
	})

	t.Run("ByWatchTime", func(t *testing.T) {
		rows := performanceRows()
		sortPerformance(rows, "watch_time")
		if firstId(rows) != "b" {
			t.Errorf("按观看时长排序首位应为b, got %s", firstId(rows))
		}
	})

	t.Run("UnknownKeyFallsBackToViews", func(t *testing.T) {
		rows := performanceRows()
		sortPerformance(rows, "bogus")
		if firstId(rows) != "b" {
			t.Errorf("未知排序键应回退按播放量, got %s", firstId(rows))
		}
	})
}

func TestCategoryStats(t *testing.T) {
	t.Run("EmptyDecodesToEmptyMap", func(t *testing.T) {
		if got := DecodeCategoryStats(""); len(got) != 0 {
			t.Errorf("空串应解析为空map, got %v", got)
		}
	})

	t.Run("InvalidJSONDecodesToEmptyMap", func(t *testing.T) {
		if got := DecodeCategoryStats("{broken"); len(got) != 0 {
			t.Errorf("脏数据应按空处理, got %v", got)
		}
	})

	t.Run("AccumulateNewCategory", func(t *testing.T) {
		raw := AccumulateCategoryStats("", "培训", 120)
		stats := DecodeCategoryStats(raw)
		if stats["培训"] != 120 {
			t.Errorf("新品类应记入120秒, got %v", stats["培训"])
		}
	})

	t.Run("AccumulateExistingCategory", func(t *testing.T) {
		raw := AccumulateCategoryStats("", "培训", 120)
		raw = AccumulateCategoryStats(raw, "培训", 60)
		raw = AccumulateCategoryStats(raw, "产品", 30)
		stats := DecodeCategoryStats(raw)
		if stats["培训"] != 180 || stats["产品"] != 30 {
			t.Errorf("累计结果不符, got %v", stats)
		}
	})

	t.Run("IgnoresEmptyTypeAndNonPositive", func(t *testing.T) {
		raw := AccumulateCategoryStats("", "培训", 120)
		if got := AccumulateCategoryStats(raw, "", 60); got != raw {
			t.Error("内容类型为空不应改动统计")
		}
		if got := AccumulateCategoryStats(raw, "培训", 0); got != raw {
			t.Error("非正时长不应改动统计")
		}
	})
}

func TestPerformanceCSVRow(t *testing.T) {
	row := &ContentPerformance{
		ContentId:         "c1",
		Title:             "新人入职指引",
		CreatorId:         "u1",
		ViewCount:         100,
		LikeCount:         8,
		FavoriteCount:     5,
		CommentCount:      3,
		ShareCount:        2,
		UniqueViewers:     60,
		Completions:       40,
		AvgCompletionRate: 0.6667,
		AvgWatchTimeSec:   95.5,
	}
	got := performanceCSVRow(row)
	want := []string{"c1", "新人入职指引", "u1", "100", "8", "5", "3", "2", "60", "40", "0.6667", "95.5"}
	if len(got) != len(want) {
		t.Fatalf("列数不符, got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第%d列不符, got %s want %s", i, got[i], want[i])
		}
	}
}

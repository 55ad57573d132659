package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func feedContents(ids ...string) []*model.Content {
	contents := make([]*model.Content, 0, len(ids))
	for _, id := range ids {
		contents = append(contents, &model.Content{Id: id})
	}
	return contents
}

func feedIds(contents []*model.Content) []string {
	ids := make([]string, 0, len(contents))
	for _, content := range contents {
		ids = append(ids, content.Id)
	}
	return ids
}

func TestMergeFeatured(t *testing.T) {
	t.Run("NoFeatured", func(t *testing.T) {
		ranked := feedContents("a", "b")
		merged := MergeFeatured(nil, ranked)
		if len(merged) != 2 || merged[0].Id != "a" {
			t.Errorf("无精选时应原样返回, got %v", feedIds(merged))
		}
	})

	t.Run("FeaturedFirst", func(t *testing.T) {
		merged := MergeFeatured(feedContents("f1", "f2"), feedContents("a", "b"))
		want := []string{"f1", "f2", "a", "b"}
		got := feedIds(merged)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("精选应置顶, got %v", got)
			}
		}
	})

	t.Run("DuplicatesRemovedGlobally", func(t *testing.T) {
		// 精选与算法结果重叠时 全列表只保留精选位一份
		merged := MergeFeatured(feedContents("f1"), feedContents("a", "f1", "b"))
		got := feedIds(merged)
		want := []string{"f1", "a", "b"}
		if len(got) != len(want) {
			t.Fatalf("重复内容应被去掉, got %v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("第%d位应为%s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("LaterPagesFreeOfFeatured", func(t *testing.T) {
		merged := MergeFeatured(feedContents("f1"), feedContents("a", "b", "f1", "c"))
		pageSize := 2
		second := merged[pageSize:]
		for _, content := range second {
			if content.Id == "f1" {
				t.Error("精选内容不应再次出现在后续页")
			}
		}
	})
}

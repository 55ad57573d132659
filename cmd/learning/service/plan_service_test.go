package service

import (
	"reflect"
	"testing"
)

func TestPreferredContentTypes(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := preferredContentTypes(""); len(got) != 0 {
			t.Errorf("空权重应返回空列表, got %v", got)
		}
	})

	t.Run("BrokenJSON", func(t *testing.T) {
		if got := preferredContentTypes("{broken"); got != nil {
			t.Errorf("非法JSON应返回nil, got %v", got)
		}
	})

	t.Run("PositiveOnlySortedByWeight", func(t *testing.T) {
		raw := `{"技能教学":3.5,"经验分享":1.2,"企业文化":0,"产品介绍":-0.5}`
		want := []string{"技能教学", "经验分享"}
		if got := preferredContentTypes(raw); !reflect.DeepEqual(got, want) {
			t.Errorf("应按权重降序且只含正权重, want %v got %v", want, got)
		}
	})

	t.Run("TieBreaksByName", func(t *testing.T) {
		raw := `{"b":1.0,"a":1.0}`
		want := []string{"a", "b"}
		if got := preferredContentTypes(raw); !reflect.DeepEqual(got, want) {
			t.Errorf("同权重按名称排序, want %v got %v", want, got)
		}
	})
}

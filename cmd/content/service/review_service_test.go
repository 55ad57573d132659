package service

import (
	"testing"
	"time"

	"WorkTok.com/cmd/model"
)

func TestAvgReviewLatencySec(t *testing.T) {
	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local)

	t.Run("Empty", func(t *testing.T) {
		if got := avgReviewLatencySec(nil, nil); got != 0 {
			t.Errorf("无记录应为0, got %v", got)
		}
	})

	t.Run("Average", func(t *testing.T) {
		terminal := []*model.ReviewRecord{
			{ContentId: "a", Status: model.ReviewStatusApproved, CreatedAt: base.Add(60 * time.Second)},
			{ContentId: "b", Status: model.ReviewStatusRejected, CreatedAt: base.Add(180 * time.Second)},
		}
		pendingAt := map[string]time.Time{"a": base, "b": base}
		if got := avgReviewLatencySec(terminal, pendingAt); got != 120 {
			t.Errorf("平均时长应为120秒, got %v", got)
		}
	})

	t.Run("SkipsWithoutPendingRecord", func(t *testing.T) {
		terminal := []*model.ReviewRecord{
			{ContentId: "a", Status: model.ReviewStatusApproved, CreatedAt: base.Add(60 * time.Second)},
			{ContentId: "orphan", Status: model.ReviewStatusApproved, CreatedAt: base.Add(999 * time.Second)},
		}
		pendingAt := map[string]time.Time{"a": base}
		if got := avgReviewLatencySec(terminal, pendingAt); got != 60 {
			t.Errorf("无提审记录的终态不应计入, got %v", got)
		}
	})

	// 终态早于提审时间的是脏数据 不计入
	t.Run("SkipsNegativeLatency", func(t *testing.T) {
		terminal := []*model.ReviewRecord{
			{ContentId: "a", Status: model.ReviewStatusApproved, CreatedAt: base.Add(-10 * time.Second)},
		}
		pendingAt := map[string]time.Time{"a": base}
		if got := avgReviewLatencySec(terminal, pendingAt); got != 0 {
			t.Errorf("负时长应被跳过, got %v", got)
		}
	})
}

package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestEditableStatus(t *testing.T) {
	t.Run("UnderReviewLocked", func(t *testing.T) {
		if EditableStatus(model.ContentStatusUnderReview) {
			t.Error("审核中的内容不应允许编辑")
		}
	})

	t.Run("OtherStatusesEditable", func(t *testing.T) {
		for _, status := range []string{
			model.ContentStatusDraft,
			model.ContentStatusRejected,
			model.ContentStatusPublished,
			model.ContentStatusRemoved,
		} {
			if !EditableStatus(status) {
				t.Errorf("状态 %s 应允许创作者编辑", status)
			}
		}
	})
}

func TestAllowedVideoExts(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		for _, ext := range []string{"mp4", "mov", "avi", "webm"} {
			if !allowedVideoExts[ext] {
				t.Errorf("格式 %s 应被支持", ext)
			}
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		for _, ext := range []string{"mkv", "flv", "wmv", ""} {
			if allowedVideoExts[ext] {
				t.Errorf("格式 %s 不应被支持", ext)
			}
		}
	})
}

func TestValidFeaturedPriority(t *testing.T) {
	t.Run("InRange", func(t *testing.T) {
		for _, priority := range []int{1, 50, 100} {
			if !ValidFeaturedPriority(priority) {
				t.Errorf("权重 %d 应合法", priority)
			}
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, priority := range []int{0, -1, 101, 1000} {
			if ValidFeaturedPriority(priority) {
				t.Errorf("权重 %d 应被拒绝", priority)
			}
		}
	})
}

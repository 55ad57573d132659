package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestEnabledFor(t *testing.T) {
	allOn := &model.NotificationSettings{
		Interaction:      true,
		Mention:          true,
		Follow:           true,
		ReviewStatus:     true,
		LearningReminder: true,
		System:           true,
	}
	allOff := &model.NotificationSettings{}

	types := []string{
		model.NotificationTypeInteraction,
		model.NotificationTypeMention,
		model.NotificationTypeFollow,
		model.NotificationTypeReviewStatus,
		model.NotificationTypeLearningReminder,
		model.NotificationTypeSystem,
	}

	t.Run("AllEnabled", func(t *testing.T) {
		for _, nt := range types {
			if !enabledFor(allOn, nt) {
				t.Errorf("开关全开时 %s 应放行", nt)
			}
		}
	})

	t.Run("AllDisabled", func(t *testing.T) {
		for _, nt := range types {
			if enabledFor(allOff, nt) {
				t.Errorf("开关全关时 %s 应拦截", nt)
			}
		}
	})

	t.Run("SelectiveMute", func(t *testing.T) {
		settings := &model.NotificationSettings{
			Interaction: false,
			Mention:     true,
			System:      true,
		}
		if enabledFor(settings, model.NotificationTypeInteraction) {
			t.Error("互动通知已关闭应拦截")
		}
		if !enabledFor(settings, model.NotificationTypeMention) {
			t.Error("提及通知开启应放行")
		}
	})

	t.Run("UnknownTypePassesThrough", func(t *testing.T) {
		if !enabledFor(allOff, "something_new") {
			t.Error("未知类型默认放行")
		}
	})
}

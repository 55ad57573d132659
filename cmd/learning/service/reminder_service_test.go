package service

import (
	"testing"
	"time"
)

func TestNextReminderTime(t *testing.T) {
	// 2025-06-16 是周一
	monday := time.Date(2025, 6, 16, 10, 0, 0, 0, time.Local)

	t.Run("DailyBeforeTimeOfDay", func(t *testing.T) {
		next, err := NextReminderTime("daily", "12:30", "", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 16, 12, 30, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("当天未到点应提醒今天, want %v got %v", want, next)
		}
	})

	t.Run("DailyAfterTimeOfDay", func(t *testing.T) {
		next, err := NextReminderTime("daily", "08:00", "", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 17, 8, 0, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("已过点应顺延到明天, want %v got %v", want, next)
		}
	})

	t.Run("WeeklySameDayLater", func(t *testing.T) {
		next, err := NextReminderTime("weekly", "18:00", "1", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 16, 18, 0, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("周一18点未过应提醒今天, want %v got %v", want, next)
		}
	})

	t.Run("WeeklySameDayPassed", func(t *testing.T) {
		next, err := NextReminderTime("weekly", "08:00", "1", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 23, 8, 0, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("周一8点已过应顺延到下周一, want %v got %v", want, next)
		}
	})

	t.Run("CustomPicksNearestDay", func(t *testing.T) {
		// 周三=3 周五=5 当前周一
		next, err := NextReminderTime("custom", "09:00", "3,5", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("应选最近的周三, want %v got %v", want, next)
		}
	})

	t.Run("SundayAsSeven", func(t *testing.T) {
		// 2025-06-22 是周日
		next, err := NextReminderTime("weekly", "20:00", "7", monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 6, 22, 20, 0, 0, 0, time.Local)
		if !next.Equal(want) {
			t.Errorf("周日记为7, want %v got %v", want, next)
		}
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		cases := []struct {
			name       string
			frequency  string
			timeOfDay  string
			daysOfWeek string
		}{
			{"BadFrequency", "monthly", "09:00", ""},
			{"BadTime", "daily", "25:00", ""},
			{"BadTimeFormat", "daily", "0900", ""},
			{"BadDay", "weekly", "09:00", "8"},
			{"EmptyDays", "weekly", "09:00", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := NextReminderTime(tc.frequency, tc.timeOfDay, tc.daysOfWeek, monday); err == nil {
					t.Error("期望参数错误")
				}
			})
		}
	})
}

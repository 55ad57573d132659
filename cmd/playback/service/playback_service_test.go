package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.Local)

	t.Run("FirstLearning", func(t *testing.T) {
		if got := NextStreak(0, nil, now); got != 1 {
			t.Errorf("首次学习连续天数应为1, got %d", got)
		}
	})

	t.Run("SameDayUnchanged", func(t *testing.T) {
		earlier := time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local)
		if got := NextStreak(5, &earlier, now); got != 5 {
			t.Errorf("当天重复学习不加天数, got %d", got)
		}
	})

	t.Run("SameDayZeroCorrected", func(t *testing.T) {
		earlier := time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local)
		if got := NextStreak(0, &earlier, now); got != 1 {
			t.Errorf("当天有记录但天数为0时修正为1, got %d", got)
		}
	})

	t.Run("YesterdayIncrement", func(t *testing.T) {
		yesterday := time.Date(2025, 6, 14, 23, 50, 0, 0, time.Local)
		if got := NextStreak(5, &yesterday, now); got != 6 {
			t.Errorf("昨天学过今天应+1, got %d", got)
		}
	})

	t.Run("GapResets", func(t *testing.T) {
		threeDaysAgo := time.Date(2025, 6, 12, 9, 0, 0, 0, time.Local)
		if got := NextStreak(9, &threeDaysAgo, now); got != 1 {
			t.Errorf("中断后重置为1, got %d", got)
		}
	})

	t.Run("MonthBoundary", func(t *testing.T) {
		lastDayOfMay := time.Date(2025, 5, 31, 20, 0, 0, 0, time.Local)
		firstOfJune := time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local)
		if got := NextStreak(3, &lastDayOfMay, firstOfJune); got != 4 {
			t.Errorf("跨月连续应+1, got %d", got)
		}
	})
}

func TestValidQuality(t *testing.T) {
	t.Run("Allowed", func(t *testing.T) {
		for _, quality := range []string{"auto", "hd", "sd"} {
			if !ValidQuality(quality) {
				t.Errorf("清晰度 %s 应被接受", quality)
			}
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, quality := range []string{"1080p", "720p", "480p", "4k", ""} {
			if ValidQuality(quality) {
				t.Errorf("清晰度 %s 应被拒绝", quality)
			}
		}
	})
}

package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestNextDownloadStatus(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		failed   bool
		want     string
	}{
		{"Started", 0, false, model.DownloadStatusDownloading},
		{"Halfway", 50, false, model.DownloadStatusDownloading},
		{"Finished", 100, false, model.DownloadStatusCompleted},
		{"Failed", 30, true, model.DownloadStatusFailed},
		// 失败标记优先于进度
		{"FailedAtFull", 100, true, model.DownloadStatusFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextDownloadStatus(tc.progress, tc.failed); got != tc.want {
				t.Errorf("nextDownloadStatus(%v, %v) = %s, want %s", tc.progress, tc.failed, got, tc.want)
			}
		})
	}
}

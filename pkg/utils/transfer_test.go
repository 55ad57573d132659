package utils

import (
	"testing"
	"time"
)

func TestConvertStringToInt64(t *testing.T) {
	if v, err := ConvertStringToInt64("42"); err != nil || v != 42 {
		t.Errorf("want 42, got %d err %v", v, err)
	}
	if _, err := ConvertStringToInt64("abc"); err == nil {
		t.Error("非数字应报错")
	}
}

func TestFormatTimePtr(t *testing.T) {
	if got := FormatTimePtr(nil); got != "" {
		t.Errorf("nil时间应返回空串, got %q", got)
	}
	ts := time.Date(2025, 6, 15, 9, 30, 0, 0, time.Local)
	if got := FormatTimePtr(&ts); got != "2025-06-15 09:30:00" {
		t.Errorf("unexpected format: %q", got)
	}
}

func TestFileExt(t *testing.T) {
	cases := map[string]string{
		"video.MP4":      "mp4",
		"a.b.c.mov":      "mov",
		"noext":          "",
		"endwithdot.":    "",
		"archive.tar.gz": "gz",
	}
	for in, want := range cases {
		if got := FileExt(in); got != want {
			t.Errorf("FileExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCrypt(t *testing.T) {
	hash, err := Crypt("s3cret!")
	if err != nil {
		t.Fatalf("crypt failed: %v", err)
	}
	if !VerifyPassword("s3cret!", hash) {
		t.Error("正确密码校验失败")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("错误密码不应通过")
	}
}

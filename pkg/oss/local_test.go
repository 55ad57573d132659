package oss

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestLocalStorageSafePath(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "http://localhost:8888")

	t.Run("RejectsTraversal", func(t *testing.T) {
		for _, name := range []string{"../etc/passwd", "videos/../../secret", "/etc/passwd"} {
			if _, err := s.safePath(name); err == nil {
				t.Errorf("路径穿越应被拒绝: %s", name)
			}
		}
	})

	t.Run("AcceptsNested", func(t *testing.T) {
		if _, err := s.safePath("videos/20250615/abc.mp4"); err != nil {
			t.Errorf("正常路径不应报错: %v", err)
		}
	})
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorage(t.TempDir(), "http://localhost:8888")

	payload := []byte("fake video bytes")
	url, err := s.Upload(ctx, "videos/20250615/test.mp4", bytes.NewReader(payload), int64(len(payload)), "video/mp4")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "http://localhost:8888/files/videos/20250615/test.mp4" {
		t.Errorf("unexpected url: %s", url)
	}

	rc, err := s.Download(ctx, "videos/20250615/test.mp4")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("下载内容与上传不一致")
	}

	if err := s.Delete(ctx, "videos/20250615/test.mp4"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// 重复删除不报错
	if err := s.Delete(ctx, "videos/20250615/test.mp4"); err != nil {
		t.Errorf("删除不存在的对象不应报错: %v", err)
	}
}

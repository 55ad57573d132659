package service

import "testing"

func TestCommentRemovalDelta(t *testing.T) {
	t.Run("NoReplies", func(t *testing.T) {
		if got := CommentRemovalDelta(0); got != -1 {
			t.Errorf("无回复时只扣自身, got %d", got)
		}
	})

	t.Run("WithReplies", func(t *testing.T) {
		if got := CommentRemovalDelta(3); got != -4 {
			t.Errorf("级联删除3条回复应扣4, got %d", got)
		}
	})
}

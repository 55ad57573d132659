package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestRebindsNote(t *testing.T) {
	t.Run("BookmarkUpdatesNote", func(t *testing.T) {
		if !RebindsNote(model.InteractionTypeBookmark) {
			t.Error("重复添加书签应更新备注而非报重复")
		}
	})

	t.Run("LikeAndFavoriteStayDuplicate", func(t *testing.T) {
		for _, interactionType := range []string{model.InteractionTypeLike, model.InteractionTypeFavorite} {
			if RebindsNote(interactionType) {
				t.Errorf("%s 重复添加应报重复", interactionType)
			}
		}
	})
}

package service

import (
	"testing"

	"WorkTok.com/cmd/model"
)

func TestBuildTagTree(t *testing.T) {
	tags := []*model.Tag{
		{Id: "t1", Name: "新人必看", Category: model.TagCategoryTopic},
		{Id: "t2", Name: "入职第一周", Category: model.TagCategoryTopic, ParentId: "t1"},
		{Id: "t3", Name: "入职第一月", Category: model.TagCategoryTopic, ParentId: "t1"},
		{Id: "t4", Name: "销售技巧", Category: model.TagCategoryTopic},
		// 父标签不在列表里时挂到顶层
		{Id: "t5", Name: "孤儿", Category: model.TagCategoryTopic, ParentId: "missing"},
	}

	roots := buildTagTree(tags)
	if len(roots) != 3 {
		t.Fatalf("顶层节点数不符, want 3 got %d", len(roots))
	}
	byId := map[string]*TagNode{}
	for _, root := range roots {
		byId[root.Id] = root
	}
	if byId["t1"] == nil || len(byId["t1"].Children) != 2 {
		t.Errorf("t1应有2个子节点, got %+v", byId["t1"])
	}
	if byId["t4"] == nil || len(byId["t4"].Children) != 0 {
		t.Errorf("t4应无子节点")
	}
	if byId["t5"] == nil {
		t.Errorf("孤儿节点应在顶层")
	}
}

func TestBuildTagTreeEmpty(t *testing.T) {
	roots := buildTagTree(nil)
	if len(roots) != 0 {
		t.Errorf("空输入应得空树, got %v", roots)
	}
}

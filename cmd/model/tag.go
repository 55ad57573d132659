package model

import "time"

// 标签分类（角色标签、主题标签、形式标签、质量标签、推荐标签）
const (
	TagCategoryRole      = "角色标签"
	TagCategoryTopic     = "主题标签"
	TagCategoryForm      = "形式标签"
	TagCategoryQuality   = "质量标签"
	TagCategoryRecommend = "推荐标签"
	// 内容分类作为标签子类型
	TagCategoryContent = "内容分类"
)

type Tag struct {
	Id        string    `json:"tag_id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:50"`
	Category  string    `json:"category" gorm:"index;size:50"`
	ParentId  string    `json:"parent_id" gorm:"index;size:36"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string { return "tags" }

// ContentTag 内容与标签关联 记录AI匹配信息
type ContentTag struct {
	Id         string    `json:"id" gorm:"primaryKey;size:36"`
	ContentId  string    `json:"content_id" gorm:"index;size:36"`
	TagId      string    `json:"tag_id" gorm:"index;size:36"`
	Confidence float64   `json:"confidence"`
	IsAuto     bool      `json:"is_auto"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ContentTag) TableName() string { return "content_tags" }

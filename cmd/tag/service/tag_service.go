package service

import (
	"context"
	"sort"
	"strings"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/tag/dal/db"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
)

type TagService struct {
	ctx context.Context
}

func NewTagService(ctx context.Context) *TagService {
	return &TagService{ctx: ctx}
}

var validCategories = map[string]bool{
	model.TagCategoryRole:      true,
	model.TagCategoryTopic:     true,
	model.TagCategoryForm:      true,
	model.TagCategoryQuality:   true,
	model.TagCategoryRecommend: true,
	model.TagCategoryContent:   true,
}

type CreateTagParam struct {
	Name     string
	Category string
	ParentId string
}

// CreateTag 同类目下标签名唯一
func (service *TagService) CreateTag(param *CreateTagParam) (*model.Tag, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("tag name is required")
	}
	if !validCategories[param.Category] {
		return nil, errno.RequestErr.WithMessage("invalid tag category")
	}
	existing, err := db.QueryTagByName(service.ctx, name, param.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errno.DuplicateErr.WithMessage("tag already exists")
	}
	tag := &model.Tag{
		Id:        uuid.NewString(),
		Name:      name,
		Category:  param.Category,
		ParentId:  param.ParentId,
		CreatedAt: time.Now(),
	}
	if err := db.CreateTag(service.ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (service *TagService) ListTags(category string) ([]*model.Tag, error) {
	return db.ListTags(service.ctx, category)
}

type UpdateTagParam struct {
	Name     string
	ParentId *string
}

// UpdateTag 改名需保持同类目内唯一 父标签不能指向自身
func (service *TagService) UpdateTag(tagId string, param *UpdateTagParam) (*model.Tag, error) {
	tag, err := db.QueryTagById(service.ctx, tagId)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errno.RequestErr.WithMessage("tag not found")
	}
	updates := map[string]interface{}{}
	name := strings.TrimSpace(param.Name)
	if name != "" && name != tag.Name {
		existing, err := db.QueryTagByName(service.ctx, name, tag.Category)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != tagId {
			return nil, errno.DuplicateErr.WithMessage("tag already exists")
		}
		updates["name"] = name
		tag.Name = name
	}
	if param.ParentId != nil {
		if *param.ParentId == tagId {
			return nil, errno.RequestErr.WithMessage("tag cannot be its own parent")
		}
		if *param.ParentId != "" {
			parent, err := db.QueryTagById(service.ctx, *param.ParentId)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, errno.RequestErr.WithMessage("parent tag not found")
			}
		}
		updates["parent_id"] = *param.ParentId
		tag.ParentId = *param.ParentId
	}
	if len(updates) == 0 {
		return tag, nil
	}
	if err := db.UpdateTag(service.ctx, tagId, updates); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag 存在子标签或内容关联时需force
func (service *TagService) DeleteTag(tagId string, force bool) error {
	tag, err := db.QueryTagById(service.ctx, tagId)
	if err != nil {
		return err
	}
	if tag == nil {
		return errno.RequestErr.WithMessage("tag not found")
	}
	if !force {
		children, err := db.CountTagChildren(service.ctx, tagId)
		if err != nil {
			return err
		}
		if children > 0 {
			return errno.StatusConflictErr.WithMessage("tag has child tags, use force to delete")
		}
		assignments, err := db.CountTagAssignments(service.ctx, tagId)
		if err != nil {
			return err
		}
		if assignments > 0 {
			return errno.StatusConflictErr.WithMessage("tag is assigned to contents, use force to delete")
		}
	}
	return db.DeleteTag(service.ctx, tagId)
}

type TagNode struct {
	*model.Tag
	Children []*TagNode `json:"children"`
}

// buildTagTree 父子挂接 孤儿节点挂到顶层
func buildTagTree(tags []*model.Tag) []*TagNode {
	nodeById := make(map[string]*TagNode, len(tags))
	for _, tag := range tags {
		nodeById[tag.Id] = &TagNode{Tag: tag, Children: []*TagNode{}}
	}
	roots := make([]*TagNode, 0, len(tags))
	for _, tag := range tags {
		node := nodeById[tag.Id]
		if tag.ParentId != "" {
			if parent, ok := nodeById[tag.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (service *TagService) TagTree(category string) ([]*TagNode, error) {
	tags, err := db.ListTags(service.ctx, category)
	if err != nil {
		return nil, err
	}
	return buildTagTree(tags), nil
}

func (service *TagService) ListContentTags(contentId string) ([]*model.Tag, error) {
	return db.ListContentTags(service.ctx, contentId)
}

func (service *TagService) DetachContentTag(contentId, tagId string) error {
	return db.DetachContentTag(service.ctx, contentId, tagId)
}

// ListTagContents 标签下的已发布内容 含直接子标签
func (service *TagService) ListTagContents(tagId string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	tag, err := db.QueryTagById(service.ctx, tagId)
	if err != nil {
		return nil, 0, err
	}
	if tag == nil {
		return nil, 0, errno.RequestErr.WithMessage("tag not found")
	}
	tagIds := []string{tagId}
	children, err := db.ListChildTagIds(service.ctx, tagId)
	if err != nil {
		return nil, 0, err
	}
	tagIds = append(tagIds, children...)
	contentIds, err := db.ListContentIdsByTags(service.ctx, tagIds)
	if err != nil {
		return nil, 0, err
	}
	if len(contentIds) == 0 {
		return []*model.Content{}, 0, nil
	}
	contents, err := contentdb.QueryContentsByIds(service.ctx, contentIds)
	if err != nil {
		return nil, 0, err
	}
	published := make([]*model.Content, 0, len(contents))
	for _, content := range contents {
		if content.Status == model.ContentStatusPublished {
			published = append(published, content)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].CreatedAt.After(published[j].CreatedAt)
	})
	total := int64(len(published))
	start := (page - 1) * pageSize
	if start >= total {
		return []*model.Content{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return published[start:end], total, nil
}

// AttachContentTags 手动补打标签 confidence记为1
func (service *TagService) AttachContentTags(contentId string, tagIds []string) error {
	tags, err := db.QueryTagsByIds(service.ctx, tagIds)
	if err != nil {
		return err
	}
	if len(tags) != len(tagIds) {
		return errno.RequestErr.WithMessage("unknown tag id")
	}
	now := time.Now()
	contentTags := make([]*model.ContentTag, 0, len(tagIds))
	for _, tagId := range tagIds {
		contentTags = append(contentTags, &model.ContentTag{
			Id:         uuid.NewString(),
			ContentId:  contentId,
			TagId:      tagId,
			Confidence: 1.0,
			IsAuto:     false,
			CreatedAt:  now,
		})
	}
	return db.AttachContentTags(service.ctx, contentTags)
}

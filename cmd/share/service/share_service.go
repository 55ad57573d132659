package service

import (
	"context"
	"fmt"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/share/dal/db"
	usersvc "WorkTok.com/cmd/user/service"
	"WorkTok.com/config"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ShareService struct {
	ctx context.Context
}

func NewShareService(ctx context.Context) *ShareService {
	return &ShareService{ctx: ctx}
}

type ShareResult struct {
	ShareId  string `json:"share_id"`
	ShareUrl string `json:"share_url"`
}

// ShareContent 生成分享链接 微信渠道带来源参数
func (service *ShareService) ShareContent(userId, contentId, platform string) (*ShareResult, error) {
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}

	share := &model.Share{
		Id:        uuid.NewString(),
		ContentId: contentId,
		UserId:    userId,
		Platform:  platform,
		CreatedAt: time.Now(),
	}
	if err := db.CreateShare(service.ctx, share); err != nil {
		return nil, err
	}
	if err := contentdb.IncContentCounter(service.ctx, contentId, "share_count", 1); err != nil {
		logrus.Warnf("inc share_count failed: %v", err)
	}

	usersvc.NewPreferenceService(service.ctx).RecordInteraction(userId, content, model.InteractionTypeShare, 0)

	url := fmt.Sprintf("%s/content/%s", config.ConfigInfo.Server.BaseUrl, contentId)
	if platform == "wechat" {
		url += "?from=wechat"
	}
	return &ShareResult{ShareId: share.Id, ShareUrl: url}, nil
}

func (service *ShareService) ListMyShares(userId string, page, pageSize int64) ([]*model.Share, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListSharesByUser(service.ctx, userId, page, pageSize)
}

func (service *ShareService) ListContentShares(contentId string, page, pageSize int64) ([]*model.Share, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return db.ListSharesByContent(service.ctx, contentId, page, pageSize)
}

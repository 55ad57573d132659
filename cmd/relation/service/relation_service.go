package service

import (
	"context"
	"time"

	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/relation/dal/db"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

func (service *RelationService) Follow(followerId, followeeId string) error {
	if followerId == followeeId {
		return errno.RequestErr.WithMessage("cannot follow yourself")
	}
	followee, err := userdb.QueryUserById(service.ctx, followeeId)
	if err != nil {
		return err
	}
	if followee == nil || followee.IsDeleted {
		return errno.UserNotExistErr
	}
	following, err := db.IsFollowing(service.ctx, followerId, followeeId)
	if err != nil {
		return err
	}
	if following {
		return errno.DuplicateErr.WithMessage("already following")
	}
	follow := &model.Follow{
		Id:         uuid.NewString(),
		FollowerId: followerId,
		FolloweeId: followeeId,
		CreatedAt:  time.Now(),
	}
	if err := db.CreateFollow(service.ctx, follow); err != nil {
		return err
	}
	if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
		EventID:          uuid.NewString(),
		NotificationType: model.NotificationTypeFollow,
		ReceiverID:       followeeId,
		SenderID:         followerId,
		Title:            "新的关注",
		Body:             "有同事关注了你",
		Timestamp:        time.Now().Unix(),
	}); err != nil {
		logrus.Warnf("send follow notification failed: %v", err)
	}
	return nil
}

func (service *RelationService) Unfollow(followerId, followeeId string) error {
	following, err := db.IsFollowing(service.ctx, followerId, followeeId)
	if err != nil {
		return err
	}
	if !following {
		return errno.RequestErr.WithMessage("not following")
	}
	return db.DeleteFollow(service.ctx, followerId, followeeId)
}

func (service *RelationService) ListFollowers(userId string, page, pageSize int64) ([]*model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	ids, total, err := db.ListFollowers(service.ctx, userId, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	users, err := userdb.QueryUsersByIds(service.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return sortByIdOrder(users, ids), total, nil
}

func (service *RelationService) ListFollowing(userId string, page, pageSize int64) ([]*model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	ids, total, err := db.ListFollowing(service.ctx, userId, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	users, err := userdb.QueryUsersByIds(service.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return sortByIdOrder(users, ids), total, nil
}

type FollowInfo struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}

// GetFollowInfo viewerId为空时不计算关注关系
func (service *RelationService) GetFollowInfo(userId, viewerId string) (*FollowInfo, error) {
	followers, err := db.CountFollowers(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	following, err := db.CountFollowing(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	info := &FollowInfo{FollowerCount: followers, FollowingCount: following}
	if viewerId != "" && viewerId != userId {
		isFollowing, err := db.IsFollowing(service.ctx, viewerId, userId)
		if err != nil {
			return nil, err
		}
		info.IsFollowing = isFollowing
	}
	return info, nil
}

// FollowingFeed 关注的人发布的内容 按发布时间倒序
func (service *RelationService) FollowingFeed(userId string, page, pageSize int64) ([]*model.Content, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	followeeIds, err := db.ListFollowingIds(service.ctx, userId)
	if err != nil {
		return nil, 0, err
	}
	return contentdb.ListPublishedByCreators(service.ctx, followeeIds, page, pageSize)
}

// IN查询不保证顺序 这里按原始id顺序重排
func sortByIdOrder(users []*model.User, ids []string) []*model.User {
	byId := make(map[string]*model.User, len(users))
	for _, user := range users {
		byId[user.Id] = user
	}
	ordered := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := byId[id]; ok {
			ordered = append(ordered, user)
		}
	}
	return ordered
}

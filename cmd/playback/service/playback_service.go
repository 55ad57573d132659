package service

import (
	"context"
	"time"

	analyticsdb "WorkTok.com/cmd/analytics/dal/db"
	analyticssvc "WorkTok.com/cmd/analytics/service"
	contentdb "WorkTok.com/cmd/content/dal/db"
	gamesvc "WorkTok.com/cmd/gamification/service"
	"WorkTok.com/cmd/model"
	"WorkTok.com/cmd/playback/dal/db"
	usersvc "WorkTok.com/cmd/user/service"
	"WorkTok.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CompletionThreshold 完播率阈值 达到即计为已完成
const CompletionThreshold = 0.9

type PlaybackService struct {
	ctx context.Context
}

func NewPlaybackService(ctx context.Context) *PlaybackService {
	return &PlaybackService{ctx: ctx}
}

type ReportProgressParam struct {
	ContentId    string
	PositionSec  float64
	WatchTimeSec float64
	Speed        float64
}

// ReportProgress 播放心跳上报 首次观看计入view_count 学习统计同步更新
func (service *PlaybackService) ReportProgress(userId string, param *ReportProgressParam) (*model.PlaybackProgress, error) {
	if param.PositionSec < 0 || param.WatchTimeSec < 0 {
		return nil, errno.RequestErr.WithMessage("invalid progress values")
	}
	if param.Speed != 0 && (param.Speed < 0.25 || param.Speed > 3) {
		return nil, errno.RequestErr.WithMessage("invalid playback speed")
	}
	content, err := contentdb.QueryContentById(service.ctx, param.ContentId)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != model.ContentStatusPublished {
		return nil, errno.ContentNotFoundErr
	}

	existing, err := db.GetProgress(service.ctx, userId, param.ContentId)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if content.Duration > 0 {
		completionRate = param.PositionSec / float64(content.Duration)
		if completionRate > 1 {
			completionRate = 1
		}
	}

	now := time.Now()
	progress := existing
	firstView := progress == nil
	if firstView {
		progress = &model.PlaybackProgress{
			Id:        uuid.NewString(),
			UserId:    userId,
			ContentId: param.ContentId,
			CreatedAt: now,
		}
	}
	wasCompleted := progress.IsCompleted
	progress.PositionSec = param.PositionSec
	if completionRate > progress.CompletionRate {
		progress.CompletionRate = completionRate
	}
	progress.WatchTimeSec += param.WatchTimeSec
	if param.Speed != 0 {
		progress.Speed = param.Speed
	}
	progress.LastPlayedAt = now
	if progress.CompletionRate >= CompletionThreshold {
		progress.IsCompleted = true
	}
	if err := db.SaveProgress(service.ctx, progress); err != nil {
		return nil, err
	}

	if firstView {
		if err := contentdb.IncContentCounter(service.ctx, param.ContentId, "view_count", 1); err != nil {
			logrus.Warnf("inc view_count failed: %v", err)
		}
	}

	newlyCompleted := progress.IsCompleted && !wasCompleted
	service.updateAnalytics(userId, content.ContentType, param.WatchTimeSec, firstView, newlyCompleted, now)
	usersvc.NewPreferenceService(service.ctx).RecordInteraction(userId, content, "view", completionRate)
	if newlyCompleted {
		gamesvc.NewGamificationService(service.ctx).CheckLearningAchievements(userId)
	}
	return progress, nil
}

// updateAnalytics 累计观看统计与连续学习天数
func (service *PlaybackService) updateAnalytics(userId, contentType string, watchTimeSec float64, firstView, newlyCompleted bool, now time.Time) {
	stats, err := analyticsdb.GetLearningAnalytics(service.ctx, userId)
	if err != nil {
		logrus.Warnf("load learning analytics failed: %v", err)
		return
	}
	if stats == nil {
		stats = &model.LearningAnalytics{UserId: userId}
	}
	stats.TotalWatchTimeSec += watchTimeSec
	stats.CategoryStats = analyticssvc.AccumulateCategoryStats(stats.CategoryStats, contentType, watchTimeSec)
	if firstView {
		stats.TotalWatched++
	}
	if newlyCompleted {
		stats.TotalCompleted++
	}
	stats.StreakDays = NextStreak(stats.StreakDays, stats.LastLearnedAt, now)
	if stats.StreakDays > stats.LongestStreakDays {
		stats.LongestStreakDays = stats.StreakDays
	}
	learnedAt := now
	stats.LastLearnedAt = &learnedAt
	if err := analyticsdb.SaveLearningAnalytics(service.ctx, stats); err != nil {
		logrus.Warnf("save learning analytics failed: %v", err)
	}

	day := now.Format("2006-01-02")
	record, err := analyticsdb.GetDailyRecord(service.ctx, userId, day)
	if err != nil {
		logrus.Warnf("load daily record failed: %v", err)
		return
	}
	if record == nil {
		record = &model.DailyLearningRecord{
			Id:        uuid.NewString(),
			UserId:    userId,
			Day:       day,
			CreatedAt: now,
		}
	}
	record.WatchTimeSec += watchTimeSec
	if firstView {
		record.WatchedCount++
	}
	if newlyCompleted {
		record.Completed++
	}
	if err := analyticsdb.SaveDailyRecord(service.ctx, record); err != nil {
		logrus.Warnf("save daily record failed: %v", err)
	}
}

// NextStreak 连续学习天数 同日不变 隔天+1 断档重置为1
func NextStreak(current int, lastLearnedAt *time.Time, now time.Time) int {
	if lastLearnedAt == nil {
		return 1
	}
	lastDay := lastLearnedAt.Format("2006-01-02")
	today := now.Format("2006-01-02")
	if lastDay == today {
		if current <= 0 {
			return 1
		}
		return current
	}
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if lastDay == yesterday {
		return current + 1
	}
	return 1
}

func (service *PlaybackService) GetProgress(userId, contentId string) (*model.PlaybackProgress, error) {
	progress, err := db.GetProgress(service.ctx, userId, contentId)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return &model.PlaybackProgress{UserId: userId, ContentId: contentId}, nil
	}
	return progress, nil
}

type HistoryItem struct {
	*model.PlaybackProgress
	Content *model.Content `json:"content,omitempty"`
}

func (service *PlaybackService) ListHistory(userId string, page, pageSize int64) ([]*HistoryItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	progresses, total, err := db.ListRecentlyWatched(service.ctx, userId, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, 0, len(progresses))
	for _, progress := range progresses {
		ids = append(ids, progress.ContentId)
	}
	contents, err := contentdb.QueryContentsByIds(service.ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byId := make(map[string]*model.Content, len(contents))
	for _, content := range contents {
		byId[content.Id] = content
	}
	items := make([]*HistoryItem, 0, len(progresses))
	for _, progress := range progresses {
		items = append(items, &HistoryItem{PlaybackProgress: progress, Content: byId[progress.ContentId]})
	}
	return items, total, nil
}

// NextVideo 连播时取最新发布的一条 排除当前内容
func (service *PlaybackService) NextVideo(currentContentId string) (*model.Content, error) {
	var excludeIds []string
	if currentContentId != "" {
		excludeIds = []string{currentContentId}
	}
	candidates, err := contentdb.ListCandidateContents(service.ctx, excludeIds, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}

func (service *PlaybackService) GetQualityPreference(userId string) (*model.VideoQualityPreference, error) {
	pref, err := db.GetQualityPreference(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return &model.VideoQualityPreference{UserId: userId, Quality: "auto"}, nil
	}
	return pref, nil
}

func (service *PlaybackService) SetQualityPreference(userId, quality string) error {
	if !ValidQuality(quality) {
		return errno.RequestErr.WithMessage("invalid quality")
	}
	return db.SaveQualityPreference(service.ctx, &model.VideoQualityPreference{UserId: userId, Quality: quality})
}

// ValidQuality 清晰度取值 auto交给客户端按网络自适应
func ValidQuality(quality string) bool {
	switch quality {
	case "auto", "hd", "sd":
		return true
	}
	return false
}

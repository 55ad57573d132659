package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	analyticsdb "WorkTok.com/cmd/analytics/dal/db"
	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/gamification/dal/db"
	"WorkTok.com/cmd/model"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 排行榜得分系数
const (
	WatchedScoreFactor   = 10.0
	WatchTimeScoreFactor = 1.0 / 60.0 // 每分钟1分
	CreatedScoreFactor   = 50.0
)

type GamificationService struct {
	ctx context.Context
}

func NewGamificationService(ctx context.Context) *GamificationService {
	return &GamificationService{ctx: ctx}
}

// LeaderboardScore 观看数*10 + 观看分钟数 + 发布数*50
func LeaderboardScore(watched int64, watchTimeSec float64, created int64) float64 {
	return float64(watched)*WatchedScoreFactor +
		watchTimeSec*WatchTimeScoreFactor +
		float64(created)*CreatedScoreFactor
}

// RebuildDailyLeaderboard 按自然日重建 先删后插
func (service *GamificationService) RebuildDailyLeaderboard(day time.Time) error {
	periodKey := day.Format("2006-01-02")
	records, err := analyticsdb.ListDayRecords(service.ctx, periodKey)
	if err != nil {
		return err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	entries := make([]*model.LeaderboardEntry, 0, len(records))
	for _, record := range records {
		created, err := contentdb.CountContentsCreatedBetween(service.ctx, record.UserId, dayStart, dayEnd)
		if err != nil {
			logrus.Warnf("count created contents failed: %v", err)
		}
		entries = append(entries, &model.LeaderboardEntry{
			Id:             uuid.NewString(),
			UserId:         record.UserId,
			Period:         "daily",
			PeriodKey:      periodKey,
			Score:          LeaderboardScore(record.WatchedCount, record.WatchTimeSec, created),
			WatchedCount:   record.WatchedCount,
			WatchTimeSec:   record.WatchTimeSec,
			CreatedContent: created,
			CreatedAt:      time.Now(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	if err := db.RebuildLeaderboard(service.ctx, "daily", periodKey, entries); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"day": periodKey, "entries": len(entries)}).Info("daily leaderboard rebuilt")
	return nil
}

type LeaderboardView struct {
	Entries []*LeaderboardRow       `json:"entries"`
	Mine    *model.LeaderboardEntry `json:"mine,omitempty"`
}

type LeaderboardRow struct {
	*model.LeaderboardEntry
	User *model.User `json:"user,omitempty"`
}

func (service *GamificationService) GetDailyLeaderboard(day time.Time, userId string, limit int) (*LeaderboardView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	periodKey := day.Format("2006-01-02")
	entries, err := db.ListLeaderboard(service.ctx, "daily", periodKey, limit)
	if err != nil {
		return nil, err
	}
	userIds := make([]string, 0, len(entries))
	for _, entry := range entries {
		userIds = append(userIds, entry.UserId)
	}
	users, err := userdb.QueryUsersByIds(service.ctx, userIds)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]*model.User, len(users))
	for _, user := range users {
		byId[user.Id] = user
	}
	rows := make([]*LeaderboardRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, &LeaderboardRow{LeaderboardEntry: entry, User: byId[entry.UserId]})
	}
	view := &LeaderboardView{Entries: rows}
	if userId != "" {
		mine, err := db.GetUserLeaderboardEntry(service.ctx, "daily", periodKey, userId)
		if err != nil {
			return nil, err
		}
		view.Mine = mine
	}
	return view, nil
}

// DefaultAchievements 平台预置成就
func DefaultAchievements() []*model.Achievement {
	return []*model.Achievement{
		{Name: "初来乍到", Description: "完成10个视频学习", Type: model.AchievementTypeLearning, RequirementValue: 10},
		{Name: "学而不倦", Description: "完成50个视频学习", Type: model.AchievementTypeLearning, RequirementValue: 50},
		{Name: "百炼成钢", Description: "完成100个视频学习", Type: model.AchievementTypeLearning, RequirementValue: 100},
		{Name: "学海无涯", Description: "完成500个视频学习", Type: model.AchievementTypeLearning, RequirementValue: 500},
		{Name: "崭露头角", Description: "发布10个作品", Type: model.AchievementTypeContribution, RequirementValue: 10},
		{Name: "金牌讲师", Description: "发布50个作品", Type: model.AchievementTypeContribution, RequirementValue: 50},
		{Name: "循序渐进", Description: "连续学习7天", Type: model.AchievementTypeStreak, RequirementValue: 7},
		{Name: "持之以恒", Description: "连续学习30天", Type: model.AchievementTypeStreak, RequirementValue: 30},
		{Name: "风雨无阻", Description: "连续学习100天", Type: model.AchievementTypeStreak, RequirementValue: 100},
	}
}

func seedKey(achievementType string, requirement int64) string {
	return achievementType + "#" + strconv.FormatInt(requirement, 10)
}

// MissingDefaults 按(类型,门槛)判重 返回尚未入库的预置成就
func MissingDefaults(existing []*model.Achievement) []*model.Achievement {
	have := make(map[string]bool, len(existing))
	for _, achievement := range existing {
		have[seedKey(achievement.Type, achievement.RequirementValue)] = true
	}
	missing := make([]*model.Achievement, 0)
	for _, achievement := range DefaultAchievements() {
		if !have[seedKey(achievement.Type, achievement.RequirementValue)] {
			missing = append(missing, achievement)
		}
	}
	return missing
}

// SeedDefaultAchievements 启动时播种预置成就 重复执行不产生重复记录
func (service *GamificationService) SeedDefaultAchievements() error {
	existing, err := db.ListAchievements(service.ctx)
	if err != nil {
		return err
	}
	for _, achievement := range MissingDefaults(existing) {
		achievement.Id = uuid.NewString()
		achievement.CreatedAt = time.Now()
		if err := db.CreateAchievement(service.ctx, achievement); err != nil {
			return err
		}
	}
	return nil
}

type CreateAchievementParam struct {
	Name             string
	Description      string
	IconUrl          string
	Type             string
	RequirementValue int64
}

func (service *GamificationService) CreateAchievement(param *CreateAchievementParam) (*model.Achievement, error) {
	switch param.Type {
	case model.AchievementTypeLearning, model.AchievementTypeContribution, model.AchievementTypeStreak:
	default:
		return nil, errno.RequestErr.WithMessage("invalid achievement type")
	}
	if param.RequirementValue <= 0 {
		return nil, errno.RequestErr.WithMessage("requirement_value must be positive")
	}
	achievement := &model.Achievement{
		Id:               uuid.NewString(),
		Name:             param.Name,
		Description:      param.Description,
		IconUrl:          param.IconUrl,
		Type:             param.Type,
		RequirementValue: param.RequirementValue,
		CreatedAt:        time.Now(),
	}
	if err := db.CreateAchievement(service.ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

type AchievementView struct {
	*model.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

func (service *GamificationService) ListAchievements(userId string) ([]*AchievementView, error) {
	achievements, err := db.ListAchievements(service.ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := db.ListUserAchievements(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementId] = ua.UnlockedAt
	}
	views := make([]*AchievementView, 0, len(achievements))
	for _, achievement := range achievements {
		view := &AchievementView{Achievement: achievement}
		if at, ok := unlockedAt[achievement.Id]; ok {
			view.Unlocked = true
			view.UnlockedAt = &at
		}
		views = append(views, view)
	}
	return views, nil
}

// CheckLearningAchievements 完播或连续学习变化后检查学习类与连续类成就
func (service *GamificationService) CheckLearningAchievements(userId string) {
	stats, err := analyticsdb.GetLearningAnalytics(service.ctx, userId)
	if err != nil || stats == nil {
		return
	}
	service.checkAndUnlock(userId, model.AchievementTypeLearning, stats.TotalCompleted)
	service.checkAndUnlock(userId, model.AchievementTypeStreak, int64(stats.StreakDays))
}

// CheckContributionAchievements 发布成功后检查贡献类成就
func (service *GamificationService) CheckContributionAchievements(userId string) {
	published, err := contentdb.CountPublishedByCreator(service.ctx, userId)
	if err != nil {
		logrus.Warnf("count published failed: %v", err)
		return
	}
	service.checkAndUnlock(userId, model.AchievementTypeContribution, published)
}

func (service *GamificationService) checkAndUnlock(userId, achievementType string, value int64) {
	achievements, err := db.ListAchievements(service.ctx)
	if err != nil {
		logrus.Warnf("list achievements failed: %v", err)
		return
	}
	for _, achievement := range achievements {
		if achievement.Type != achievementType || value < achievement.RequirementValue {
			continue
		}
		created, err := db.UnlockAchievement(service.ctx, &model.UserAchievement{
			Id:            uuid.NewString(),
			UserId:        userId,
			AchievementId: achievement.Id,
			UnlockedAt:    time.Now(),
		})
		if err != nil {
			logrus.Warnf("unlock achievement failed: %v", err)
			continue
		}
		if created {
			if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
				EventID:          uuid.NewString(),
				NotificationType: model.NotificationTypeSystem,
				ReceiverID:       userId,
				Title:            "解锁新成就",
				Body:             "恭喜解锁成就「" + achievement.Name + "」",
				Timestamp:        time.Now().Unix(),
			}); err != nil {
				logrus.Warnf("send achievement notification failed: %v", err)
			}
		}
	}
}

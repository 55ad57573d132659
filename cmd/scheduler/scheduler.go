package scheduler

import (
	"context"
	"time"

	downloadsvc "WorkTok.com/cmd/download/service"
	gamesvc "WorkTok.com/cmd/gamification/service"
	learningsvc "WorkTok.com/cmd/learning/service"
	"WorkTok.com/pkg/cache"
	"github.com/go-redsync/redsync/v4"
	goredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler 定时任务 多实例部署时用redis锁保证单点执行
type Scheduler struct {
	cron *cron.Cron
	rs   *redsync.Redsync
}

func New() *Scheduler {
	pool := goredis.NewPool(cache.RDB)
	return &Scheduler{
		cron: cron.New(),
		rs:   redsync.New(pool),
	}
}

// withLock 拿不到锁说明别的实例在跑 直接跳过本轮
func (s *Scheduler) withLock(name string, expiry time.Duration, job func(ctx context.Context)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), expiry)
		defer cancel()
		mutex := s.rs.NewMutex("scheduler:"+name, redsync.WithExpiry(expiry))
		if err := mutex.TryLockContext(ctx); err != nil {
			return
		}
		defer mutex.UnlockContext(ctx)
		job(ctx)
	}
}

func (s *Scheduler) Start() {
	// 每分钟派发到期的学习提醒
	s.cron.AddFunc("* * * * *", s.withLock("reminder_dispatch", 50*time.Second, func(ctx context.Context) {
		if err := learningsvc.NewReminderService(ctx).DispatchDueReminders(time.Now()); err != nil {
			logrus.Errorf("dispatch reminders failed: %v", err)
		}
	}))

	// 每小时刷新当日排行榜
	s.cron.AddFunc("5 * * * *", s.withLock("leaderboard_today", 10*time.Minute, func(ctx context.Context) {
		if err := gamesvc.NewGamificationService(ctx).RebuildDailyLeaderboard(time.Now()); err != nil {
			logrus.Errorf("rebuild today leaderboard failed: %v", err)
		}
	}))

	// 每天凌晨结算昨日榜
	s.cron.AddFunc("10 0 * * *", s.withLock("leaderboard_yesterday", 10*time.Minute, func(ctx context.Context) {
		if err := gamesvc.NewGamificationService(ctx).RebuildDailyLeaderboard(time.Now().AddDate(0, 0, -1)); err != nil {
			logrus.Errorf("rebuild yesterday leaderboard failed: %v", err)
		}
	}))

	// 每小时回收过期下载授权
	s.cron.AddFunc("20 * * * *", s.withLock("download_expire", 5*time.Minute, func(ctx context.Context) {
		if err := downloadsvc.NewDownloadService(ctx).ExpireStale(); err != nil {
			logrus.Errorf("expire downloads failed: %v", err)
		}
	}))

	s.cron.Start()
	logrus.Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

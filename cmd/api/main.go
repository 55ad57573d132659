package main

import (
	"context"
	"fmt"

	analyticsdb "WorkTok.com/cmd/analytics/dal/db"
	"WorkTok.com/cmd/api/router"
	webs "WorkTok.com/cmd/api/router/websocket"
	commentdb "WorkTok.com/cmd/comment/dal/db"
	contentdb "WorkTok.com/cmd/content/dal/db"
	downloaddb "WorkTok.com/cmd/download/dal/db"
	gamedb "WorkTok.com/cmd/gamification/dal/db"
	gamesvc "WorkTok.com/cmd/gamification/service"
	interactiondb "WorkTok.com/cmd/interaction/dal/db"
	learningdb "WorkTok.com/cmd/learning/dal/db"
	"WorkTok.com/cmd/model"
	notificationdb "WorkTok.com/cmd/notification/dal/db"
	notificationsvc "WorkTok.com/cmd/notification/service"
	playbackdb "WorkTok.com/cmd/playback/dal/db"
	relationdb "WorkTok.com/cmd/relation/dal/db"
	reportdb "WorkTok.com/cmd/report/dal/db"
	"WorkTok.com/cmd/scheduler"
	sharedb "WorkTok.com/cmd/share/dal/db"
	tagdb "WorkTok.com/cmd/tag/dal/db"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/config"
	"WorkTok.com/pkg/cache"
	"WorkTok.com/pkg/database"
	"WorkTok.com/pkg/errno"
	jwt "WorkTok.com/pkg/jwt"
	"WorkTok.com/pkg/mq"
	"WorkTok.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	database.Init()
	migrate()

	userdb.Init()
	relationdb.Init()
	contentdb.Init()
	interactiondb.Init()
	commentdb.Init()
	sharedb.Init()
	tagdb.Init()
	learningdb.Init()
	playbackdb.Init()
	downloaddb.Init()
	notificationdb.Init()
	gamedb.Init()
	analyticsdb.Init()
	reportdb.Init()

	cache.Init()
	oss.Init()

	if err := gamesvc.NewGamificationService(context.Background()).SeedDefaultAchievements(); err != nil {
		logrus.Warnf("seed default achievements failed: %v", err)
	}

	mq.InitProducer(rabbitURL())
	startConsumer()

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
}

func migrate() {
	err := database.DB.AutoMigrate(
		&model.User{},
		&model.UserPreference{},
		&model.Follow{},
		&model.Content{},
		&model.ReviewRecord{},
		&model.Interaction{},
		&model.Comment{},
		&model.Share{},
		&model.Tag{},
		&model.ContentTag{},
		&model.Topic{},
		&model.TopicContent{},
		&model.Collection{},
		&model.CollectionContent{},
		&model.LearningReminder{},
		&model.PlaybackProgress{},
		&model.VideoQualityPreference{},
		&model.Download{},
		&model.Notification{},
		&model.NotificationSettings{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.LeaderboardEntry{},
		&model.LearningAnalytics{},
		&model.DailyLearningRecord{},
		&model.Report{},
	)
	if err != nil {
		panic(err)
	}
}

func rabbitURL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

// startConsumer 通知事件消费 落库并推送在线用户
func startConsumer() {
	consumer, err := mq.NewConsumer(rabbitURL())
	if err != nil {
		logrus.Errorf("mq consumer init failed: %v", err)
		return
	}
	go func() {
		if err := consumer.ConsumeNotificationEvents(context.Background(), notificationsvc.NewEventHandler()); err != nil {
			logrus.Errorf("mq consume failed: %v", err)
		}
	}()
}

func main() {
	Init()

	sched := scheduler.New()
	sched.Start()
	defer sched.Stop()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "internal error",
			})
		})))

	router.Register(r)

	ws := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.WsAddr),
	)
	ws.NoHijackConnPool = true
	webs.WebsocketRegister(ws)

	go ws.Spin()
	r.Spin()
}

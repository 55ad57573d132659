package router

import (
	"context"

	handler_analytics "WorkTok.com/cmd/api/handlers/analytics"
	handler_content "WorkTok.com/cmd/api/handlers/content"
	handler_download "WorkTok.com/cmd/api/handlers/download"
	handler_feed "WorkTok.com/cmd/api/handlers/feed"
	handler_gamification "WorkTok.com/cmd/api/handlers/gamification"
	handler_interaction "WorkTok.com/cmd/api/handlers/interaction"
	handler_learning "WorkTok.com/cmd/api/handlers/learning"
	handler_notification "WorkTok.com/cmd/api/handlers/notification"
	handler_playback "WorkTok.com/cmd/api/handlers/playback"
	handler_relation "WorkTok.com/cmd/api/handlers/relation"
	handler_report "WorkTok.com/cmd/api/handlers/report"
	handler_tag "WorkTok.com/cmd/api/handlers/tag"
	handler_user "WorkTok.com/cmd/api/handlers/user"
	jwt "WorkTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func tokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			c.AbortWithStatus(401)
			return
		}
		c.Next(ctx)
	}
}

func Register(h *server.Hertz) {
	h.POST("/v1/user/login", jwt.AccessTokenJwtMiddleware.LoginHandler)
	h.POST("/v1/user/refresh", jwt.AccessTokenJwtMiddleware.RefreshHandler)
	h.GET("/files/*object", handler_content.ServeFile)

	v1 := h.Group("/v1", tokenAuthFunc())

	user := v1.Group("/user")
	user.POST("/create", handler_user.CreateUser)
	user.GET("/info", handler_user.GetUserInfo)
	user.GET("/info/:user_id", handler_user.GetUserInfo)
	user.PUT("/profile", handler_user.UpdateProfile)
	user.PUT("/password", handler_user.ChangePassword)
	user.DELETE("/delete/:user_id", handler_user.DeleteUser)
	user.GET("/list", handler_user.ListUsers)
	user.GET("/kols", handler_user.ListKols)
	user.PUT("/kol", handler_user.SetKol)
	user.PUT("/admin", handler_user.SetAdmin)
	user.POST("/avatar/upload", handler_content.UploadAvatar)

	relation := v1.Group("/relation")
	relation.POST("/action", handler_relation.FollowAction)
	relation.GET("/follower/list", handler_relation.FollowerList)
	relation.GET("/following/list", handler_relation.FollowingList)
	relation.GET("/info", handler_relation.FollowInfo)
	relation.GET("/feed", handler_relation.FollowingFeed)

	content := v1.Group("/content")
	content.POST("/create", handler_content.CreateContent)
	content.GET("/info/:content_id", handler_content.GetContent)
	content.PUT("/update/:content_id", handler_content.UpdateContent)
	content.DELETE("/draft/:content_id", handler_content.DeleteDraft)
	content.POST("/submit/:content_id", handler_content.SubmitForReview)
	content.DELETE("/remove/:content_id", handler_content.RemoveContent)
	content.POST("/restore/:content_id", handler_content.RestoreContent)
	content.GET("/mine", handler_content.ListMyContents)
	content.GET("/list", handler_content.ListContents)
	content.GET("/admin/list", handler_content.AdminListContents)
	content.GET("/admin/stats", handler_content.ContentStatusStats)
	content.POST("/admin/batch_remove", handler_content.BatchRemoveContents)
	content.DELETE("/admin/purge/:content_id", handler_content.PurgeContent)
	content.GET("/search", handler_content.SearchContents)
	content.GET("/featured", handler_content.ListFeatured)
	content.PUT("/featured/:content_id", handler_content.SetFeatured)
	content.POST("/video/upload", handler_content.UploadVideo)
	content.POST("/cover/upload", handler_content.UploadCover)
	content.GET("/tags/:content_id", handler_tag.ListContentTags)
	content.POST("/tags/:content_id", handler_tag.AttachContentTags)
	content.DELETE("/tags/:content_id/:tag_id", handler_tag.DetachContentTag)

	review := v1.Group("/review")
	review.POST("/submit", handler_content.SubmitReview)
	review.POST("/batch", handler_content.BatchReview)
	review.POST("/assign", handler_content.AssignExpertReview)
	review.GET("/records/:content_id", handler_content.ListReviewRecords)
	review.GET("/queue", handler_content.ReviewQueue)
	review.GET("/statistics", handler_content.ReviewStatistics)

	interaction := v1.Group("/interaction")
	interaction.POST("/action", handler_interaction.InteractionAction)
	interaction.GET("/list", handler_interaction.InteractionList)
	interaction.GET("/status", handler_interaction.InteractionStatus)
	interaction.GET("/admin/list", handler_interaction.AdminListInteractions)

	comment := v1.Group("/comment")
	comment.POST("/create", handler_interaction.CreateComment)
	comment.PUT("/update/:comment_id", handler_interaction.UpdateComment)
	comment.DELETE("/delete/:comment_id", handler_interaction.DeleteComment)
	comment.GET("/list", handler_interaction.CommentList)
	comment.GET("/mine", handler_interaction.MyComments)
	comment.GET("/admin/list", handler_interaction.AdminListComments)

	share := v1.Group("/share")
	share.POST("/create", handler_interaction.ShareContent)
	share.GET("/mine", handler_interaction.MyShares)
	share.GET("/content/:content_id", handler_interaction.ContentShares)

	feed := v1.Group("/feed")
	feed.GET("/list", handler_feed.Feed)
	feed.GET("/similar", handler_feed.Similar)

	topic := v1.Group("/topic")
	topic.POST("/create", handler_learning.CreateTopic)
	topic.PUT("/update/:topic_id", handler_learning.UpdateTopic)
	topic.PUT("/active/:topic_id", handler_learning.SetTopicActive)
	topic.GET("/list", handler_learning.ListTopics)
	topic.GET("/info/:topic_id", handler_learning.GetTopicDetail)
	topic.POST("/content/:topic_id", handler_learning.AddTopicContent)
	topic.DELETE("/content/:topic_id/:content_id", handler_learning.RemoveTopicContent)
	topic.PUT("/reorder/:topic_id", handler_learning.ReorderTopic)

	collection := v1.Group("/collection")
	collection.POST("/create", handler_learning.CreateCollection)
	collection.PUT("/update/:collection_id", handler_learning.UpdateCollection)
	collection.PUT("/active/:collection_id", handler_learning.SetCollectionActive)
	collection.PUT("/reorder/:collection_id", handler_learning.ReorderCollection)
	collection.GET("/list", handler_learning.ListCollections)
	collection.GET("/info/:collection_id", handler_learning.GetCollectionDetail)
	collection.POST("/content/:collection_id", handler_learning.AddCollectionContent)
	collection.DELETE("/content/:collection_id/:content_id", handler_learning.RemoveCollectionContent)
	collection.POST("/complete/:collection_id", handler_learning.CompleteCollection)
	collection.GET("/next/:collection_id", handler_learning.NextInCollection)

	v1.GET("/learning/plan", handler_learning.LearningPlan)

	reminder := v1.Group("/reminder")
	reminder.GET("/info", handler_learning.GetReminder)
	reminder.PUT("/save", handler_learning.SaveReminder)

	playback := v1.Group("/playback")
	playback.POST("/progress", handler_playback.ReportProgress)
	playback.GET("/progress/:content_id", handler_playback.GetProgress)
	playback.GET("/history", handler_playback.WatchHistory)
	playback.GET("/next", handler_playback.NextVideo)
	playback.GET("/quality", handler_playback.GetQualityPreference)
	playback.PUT("/quality", handler_playback.SetQualityPreference)

	download := v1.Group("/download")
	download.POST("/request", handler_download.RequestDownload)
	download.GET("/list", handler_download.ListDownloads)
	download.PUT("/progress/:download_id", handler_download.UpdateProgress)
	download.DELETE("/delete/:download_id", handler_download.DeleteDownload)
	download.DELETE("/clear", handler_download.ClearDownloads)
	download.GET("/storage", handler_download.StorageUsage)

	notification := v1.Group("/notification")
	notification.GET("/list", handler_notification.ListNotifications)
	notification.PUT("/read/:notification_id", handler_notification.MarkRead)
	notification.PUT("/read_all", handler_notification.MarkAllRead)
	notification.GET("/unread_count", handler_notification.UnreadCount)
	notification.GET("/settings", handler_notification.GetSettings)
	notification.PUT("/settings", handler_notification.SaveSettings)

	tag := v1.Group("/tag")
	tag.POST("/create", handler_tag.CreateTag)
	tag.GET("/list", handler_tag.ListTags)
	tag.GET("/tree", handler_tag.TagTree)
	tag.GET("/contents/:tag_id", handler_tag.TagContents)
	tag.PUT("/update/:tag_id", handler_tag.UpdateTag)
	tag.DELETE("/delete/:tag_id", handler_tag.DeleteTag)

	gamification := v1.Group("/gamification")
	gamification.GET("/leaderboard/daily", handler_gamification.DailyLeaderboard)
	gamification.GET("/achievement/list", handler_gamification.ListAchievements)
	gamification.POST("/achievement/create", handler_gamification.CreateAchievement)

	analytics := v1.Group("/analytics")
	analytics.GET("/mine", handler_analytics.MyAnalytics)
	analytics.GET("/platform", handler_analytics.PlatformStats)
	analytics.GET("/export/learning", handler_analytics.ExportLearningCSV)
	analytics.GET("/export/content", handler_analytics.ExportContentCSV)
	analytics.GET("/content/summary", handler_analytics.ContentSummary)
	analytics.GET("/content/performance", handler_analytics.ContentPerformanceList)
	analytics.GET("/content/detail/:content_id", handler_analytics.ContentPerformanceDetail)

	report := v1.Group("/report")
	report.POST("/create", handler_report.CreateReport)
	report.GET("/list", handler_report.ListReports)
	report.PUT("/review/:report_id", handler_report.StartReviewing)
	report.PUT("/handle/:report_id", handler_report.HandleReport)
	report.GET("/stats", handler_report.ReportStats)
}

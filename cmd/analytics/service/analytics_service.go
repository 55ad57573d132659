package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"WorkTok.com/cmd/analytics/dal/db"
	contentdb "WorkTok.com/cmd/content/dal/db"
	"WorkTok.com/cmd/model"
	playbackdb "WorkTok.com/cmd/playback/dal/db"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/pkg/errno"
	"github.com/pkg/errors"
)

type AnalyticsService struct {
	ctx context.Context
}

func NewAnalyticsService(ctx context.Context) *AnalyticsService {
	return &AnalyticsService{ctx: ctx}
}

type UserAnalyticsView struct {
	*model.LearningAnalytics
	CategoryWatchTime map[string]float64           `json:"category_watch_time"`
	Daily             []*model.DailyLearningRecord `json:"daily"`
}

// GetUserAnalytics 近days天的学习曲线 默认30天
func (service *AnalyticsService) GetUserAnalytics(userId string, days int) (*UserAnalyticsView, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	stats, err := db.GetLearningAnalytics(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &model.LearningAnalytics{UserId: userId}
	}
	now := time.Now()
	from := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
	to := now.Format("2006-01-02")
	daily, err := db.ListDailyRecords(service.ctx, userId, from, to)
	if err != nil {
		return nil, err
	}
	return &UserAnalyticsView{
		LearningAnalytics: stats,
		CategoryWatchTime: DecodeCategoryStats(stats.CategoryStats),
		Daily:             daily,
	}, nil
}

// DecodeCategoryStats 解析分品类观看时长 脏数据按空处理
func DecodeCategoryStats(raw string) map[string]float64 {
	stats := map[string]float64{}
	if raw == "" {
		return stats
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return map[string]float64{}
	}
	return stats
}

// AccumulateCategoryStats 给某内容类型累计观看秒数 返回新JSON
func AccumulateCategoryStats(raw, contentType string, watchTimeSec float64) string {
	if contentType == "" || watchTimeSec <= 0 {
		return raw
	}
	stats := DecodeCategoryStats(raw)
	stats[contentType] += watchTimeSec
	encoded, err := json.Marshal(stats)
	if err != nil {
		return raw
	}
	return string(encoded)
}

func (service *AnalyticsService) GetPlatformStats() (*db.PlatformStats, error) {
	return db.AggregatePlatformStats(service.ctx, time.Now().Format("2006-01-02"))
}

// ContentSummary 已发布内容的总体表现
type ContentSummary struct {
	PublishedContents int64   `json:"published_contents"`
	TotalViews        int64   `json:"total_views"`
	TotalCompletions  int64   `json:"total_completions"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
}

func (service *AnalyticsService) GetContentSummary() (*ContentSummary, error) {
	platform, err := db.AggregatePlatformStats(service.ctx, time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	completions, avgRate, err := playbackdb.OverallPlaybackStats(service.ctx)
	if err != nil {
		return nil, err
	}
	return &ContentSummary{
		PublishedContents: platform.PublishedContents,
		TotalViews:        platform.TotalViews,
		TotalCompletions:  completions,
		AvgCompletionRate: avgRate,
	}, nil
}

// ContentPerformance 单内容表现指标 管理后台用
type ContentPerformance struct {
	ContentId         string  `json:"content_id"`
	Title             string  `json:"title"`
	CreatorId         string  `json:"creator_id"`
	ViewCount         int64   `json:"view_count"`
	LikeCount         int64   `json:"like_count"`
	FavoriteCount     int64   `json:"favorite_count"`
	CommentCount      int64   `json:"comment_count"`
	ShareCount        int64   `json:"share_count"`
	UniqueViewers     int64   `json:"unique_viewers"`
	Completions       int64   `json:"completions"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
	AvgWatchTimeSec   float64 `json:"avg_watch_time_sec"`
}

// 完播率等指标要全量算完才能排序 扫描上限防止表过大拖垮接口
const performanceScanCap = 1000

func (service *AnalyticsService) loadPerformanceRows(sortBy string) ([]*ContentPerformance, error) {
	contents, err := contentdb.ListCandidateContents(service.ctx, nil, nil, performanceScanCap)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(contents))
	for _, content := range contents {
		ids = append(ids, content.Id)
	}
	aggs, err := playbackdb.AggregateByContent(service.ctx, ids)
	if err != nil {
		return nil, err
	}
	rows := make([]*ContentPerformance, 0, len(contents))
	for _, content := range contents {
		rows = append(rows, buildPerformance(content, aggs[content.Id]))
	}
	sortPerformance(rows, sortBy)
	return rows, nil
}

// ListContentPerformance 按指标排序的已发布内容表现列表
func (service *AnalyticsService) ListContentPerformance(sortBy string, page, pageSize int64) ([]*ContentPerformance, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	rows, err := service.loadPerformanceRows(sortBy)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(rows))
	start := (page - 1) * pageSize
	if start >= total {
		return []*ContentPerformance{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return rows[start:end], total, nil
}

// GetContentPerformance 单内容详细表现
func (service *AnalyticsService) GetContentPerformance(contentId string) (*ContentPerformance, error) {
	content, err := contentdb.QueryContentById(service.ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, errno.ContentNotFoundErr
	}
	aggs, err := playbackdb.AggregateByContent(service.ctx, []string{contentId})
	if err != nil {
		return nil, err
	}
	return buildPerformance(content, aggs[contentId]), nil
}

func buildPerformance(content *model.Content, agg *playbackdb.ContentPlaybackAgg) *ContentPerformance {
	row := &ContentPerformance{
		ContentId:     content.Id,
		Title:         content.Title,
		CreatorId:     content.CreatorId,
		ViewCount:     content.ViewCount,
		LikeCount:     content.LikeCount,
		FavoriteCount: content.FavoriteCount,
		CommentCount:  content.CommentCount,
		ShareCount:    content.ShareCount,
	}
	if agg != nil {
		row.UniqueViewers = agg.UniqueViewers
		row.Completions = agg.Completions
		row.AvgCompletionRate = agg.AvgCompletionRate
		row.AvgWatchTimeSec = agg.AvgWatchTimeSec
	}
	return row
}

func sortPerformance(rows []*ContentPerformance, sortBy string) {
	less := func(i, j int) bool { return rows[i].ViewCount > rows[j].ViewCount }
	switch sortBy {
	case "likes":
		less = func(i, j int) bool { return rows[i].LikeCount > rows[j].LikeCount }
	case "comments":
		less = func(i, j int) bool { return rows[i].CommentCount > rows[j].CommentCount }
	case "shares":
		less = func(i, j int) bool { return rows[i].ShareCount > rows[j].ShareCount }
	case "completion_rate":
		less = func(i, j int) bool { return rows[i].AvgCompletionRate > rows[j].AvgCompletionRate }
	case "watch_time":
		less = func(i, j int) bool { return rows[i].AvgWatchTimeSec > rows[j].AvgWatchTimeSec }
	}
	sort.SliceStable(rows, less)
}

// ExportContentCSV 按内容导出表现指标 与表现列表同一份数据源
func (service *AnalyticsService) ExportContentCSV(sortBy string) ([]byte, error) {
	rows, err := service.loadPerformanceRows(sortBy)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	writer := csv.NewWriter(&buf)
	header := []string{"内容ID", "标题", "创作者", "播放量", "点赞", "收藏", "评论", "分享", "观看人数", "完成数", "平均完播率", "平均观看时长(秒)"}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrapf(err, "write csv header failed,err: %v", err)
	}
	for _, row := range rows {
		if err := writer.Write(performanceCSVRow(row)); err != nil {
			return nil, errors.Wrapf(err, "write csv row failed,err: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrapf(err, "flush csv failed,err: %v", err)
	}
	return buf.Bytes(), nil
}

func performanceCSVRow(row *ContentPerformance) []string {
	return []string{
		row.ContentId,
		row.Title,
		row.CreatorId,
		strconv.FormatInt(row.ViewCount, 10),
		strconv.FormatInt(row.LikeCount, 10),
		strconv.FormatInt(row.FavoriteCount, 10),
		strconv.FormatInt(row.CommentCount, 10),
		strconv.FormatInt(row.ShareCount, 10),
		strconv.FormatInt(row.UniqueViewers, 10),
		strconv.FormatInt(row.Completions, 10),
		fmt.Sprintf("%.4f", row.AvgCompletionRate),
		fmt.Sprintf("%.1f", row.AvgWatchTimeSec),
	}
}

// ExportLearningCSV 管理后台导出 带UTF-8 BOM方便Excel直接打开
func (service *AnalyticsService) ExportLearningCSV(day string) ([]byte, error) {
	records, err := db.ListDayRecords(service.ctx, day)
	if err != nil {
		return nil, err
	}
	userIds := make([]string, 0, len(records))
	for _, record := range records {
		userIds = append(userIds, record.UserId)
	}
	users, err := userdb.QueryUsersByIds(service.ctx, userIds)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]*model.User, len(users))
	for _, user := range users {
		byId[user.Id] = user
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	writer := csv.NewWriter(&buf)
	header := []string{"日期", "工号", "姓名", "部门", "观看数", "观看时长(分钟)", "完成数"}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrapf(err, "write csv header failed,err: %v", err)
	}
	for _, record := range records {
		employeeId, name, department := "", "", ""
		if user, ok := byId[record.UserId]; ok {
			employeeId, name, department = user.EmployeeId, user.Name, user.Department
		}
		row := []string{
			record.Day,
			employeeId,
			name,
			department,
			strconv.FormatInt(record.WatchedCount, 10),
			fmt.Sprintf("%.1f", record.WatchTimeSec/60),
			strconv.FormatInt(record.Completed, 10),
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrapf(err, "write csv row failed,err: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrapf(err, "flush csv failed,err: %v", err)
	}
	return buf.Bytes(), nil
}

package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"WorkTok.com/cmd/learning/dal/db"
	"WorkTok.com/cmd/model"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReminderService struct {
	ctx context.Context
}

func NewReminderService(ctx context.Context) *ReminderService {
	return &ReminderService{ctx: ctx}
}

type SaveReminderParam struct {
	Enabled    bool
	Frequency  string // daily, weekly, custom
	TimeOfDay  string // HH:MM
	DaysOfWeek string // 1,3,5 周一为1 周日为7
}

func parseTimeOfDay(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, errno.RequestErr.WithMessage("time_of_day must be HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errno.RequestErr.WithMessage("invalid hour")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errno.RequestErr.WithMessage("invalid minute")
	}
	return hour, minute, nil
}

func parseDaysOfWeek(value string) (map[int]bool, error) {
	days := make(map[int]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil || day < 1 || day > 7 {
			return nil, errno.RequestErr.WithMessage("days_of_week must be 1..7")
		}
		days[day] = true
	}
	return days, nil
}

// isoWeekday 周一=1..周日=7
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// NextReminderTime 计算下一次提醒时间 daily取下一个时刻 weekly/custom匹配星期
func NextReminderTime(frequency, timeOfDay, daysOfWeek string, now time.Time) (*time.Time, error) {
	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	switch frequency {
	case "daily":
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return &candidate, nil
	case "weekly", "custom":
		days, err := parseDaysOfWeek(daysOfWeek)
		if err != nil {
			return nil, err
		}
		if len(days) == 0 {
			return nil, errno.RequestErr.WithMessage("days_of_week is required")
		}
		for i := 0; i < 8; i++ {
			next := candidate.AddDate(0, 0, i)
			if next.After(now) && days[isoWeekday(next)] {
				return &next, nil
			}
		}
		return nil, errno.RequestErr.WithMessage("no matching day")
	default:
		return nil, errno.RequestErr.WithMessage("invalid frequency")
	}
}

func (service *ReminderService) SaveReminder(userId string, param *SaveReminderParam) (*model.LearningReminder, error) {
	reminder, err := db.GetReminder(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		reminder = &model.LearningReminder{
			Id:        uuid.NewString(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
	}
	reminder.Enabled = param.Enabled
	reminder.Frequency = param.Frequency
	reminder.TimeOfDay = param.TimeOfDay
	reminder.DaysOfWeek = param.DaysOfWeek
	if param.Enabled {
		next, err := NextReminderTime(param.Frequency, param.TimeOfDay, param.DaysOfWeek, time.Now())
		if err != nil {
			return nil, err
		}
		reminder.NextReminderAt = next
	} else {
		reminder.NextReminderAt = nil
	}
	if err := db.SaveReminder(service.ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (service *ReminderService) GetReminder(userId string) (*model.LearningReminder, error) {
	reminder, err := db.GetReminder(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return &model.LearningReminder{UserId: userId, Enabled: false}, nil
	}
	return reminder, nil
}

// DispatchDueReminders 调度器每分钟触发 发送到期提醒并滚动下一次时间
func (service *ReminderService) DispatchDueReminders(now time.Time) error {
	reminders, err := db.ListDueReminders(service.ctx, now, 500)
	if err != nil {
		return err
	}
	for _, reminder := range reminders {
		if err := mq.SendNotificationEvent(service.ctx, &mq.NotificationEvent{
			EventID:          uuid.NewString(),
			NotificationType: model.NotificationTypeLearningReminder,
			ReceiverID:       reminder.UserId,
			Title:            "学习提醒",
			Body:             "该看看今天的学习内容了",
			Timestamp:        now.Unix(),
		}); err != nil {
			logrus.Warnf("send learning reminder failed: %v", err)
			continue
		}
		next, err := NextReminderTime(reminder.Frequency, reminder.TimeOfDay, reminder.DaysOfWeek, now)
		if err != nil {
			logrus.Warnf("reschedule reminder %s failed: %v", reminder.Id, err)
			next = nil
		}
		if err := db.UpdateNextReminderAt(service.ctx, reminder.Id, next); err != nil {
			logrus.Warnf("update next reminder failed: %v", err)
		}
	}
	return nil
}

// File: services/booking/reminder.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pitchside/config"
	"pitchside/cron"
	"pitchside/models"
	"pitchside/utils"

	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues a reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b *models.Booking) error
}

// AsynqReminderScheduler queues reminder tasks for the cron worker.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewReminderScheduler builds a scheduler backed by the reminder queue.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder queues a reminder:send task to fire at 08:00 on the
// session day. Past fire times enqueue immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, b *models.Booking) error {
	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		CoachID:   b.CoachID,
		Date:      b.Date,
		StartTime: b.StartTime,
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	day, err := utils.ParseDate(b.Date)
	if err != nil {
		return err
	}
	fireAt := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.Local)

	task := asynq.NewTask(cron.TypeReminderSend, payload)
	_, err = s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

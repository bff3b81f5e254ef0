package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"conectcliente/config"
	"conectcliente/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues flight reminder pushes on the Redis queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleFlightReminder queues a push for the day before the booked
// flight, at the booked slot time. Flights less than a day away get no
// reminder.
func (s *ReminderScheduler) ScheduleFlightReminder(booking models.Booking) error {
	fireAt, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date/time: %w", err)
	}
	fireAt = fireAt.AddDate(0, 0, -1)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ClientID:  booking.ClientID,
		BookingID: booking.ID,
		FireDate:  fireAt.Format(time.RFC3339),
		Title:     "Voo agendado para amanhã 🚁",
		Body: fmt.Sprintf("Lembrete: %s em %s amanhã às %s.",
			booking.Service, booking.Location, booking.Time),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

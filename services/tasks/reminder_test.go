package tasks

import (
	"testing"
	"time"

	"conectcliente/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFlightReminderSkipsNearFlights(t *testing.T) {
	s := &ReminderScheduler{} // enqueue never reached

	// A flight later today is too close for a day-before reminder.
	today := time.Now().Format("2006-01-02")
	err := s.ScheduleFlightReminder(models.Booking{Date: today, Time: "21:00"})
	assert.NoError(t, err)
}

func TestScheduleFlightReminderRejectsBadDate(t *testing.T) {
	s := &ReminderScheduler{}
	err := s.ScheduleFlightReminder(models.Booking{Date: "amanhã", Time: "10:00"})
	assert.Error(t, err)
}

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{ClientID: "client-1", BookingID: "b-1", Title: "t", Body: "b"}
	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Len(t, opts, 1)
	assert.NotEmpty(t, task.Payload())
}

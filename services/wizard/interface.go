package wizard

import (
	"context"

	"conectcliente/models"

	"github.com/go-redis/redis/v8"
)

// IdentityProvider reports the authenticated identity bound to a request,
// if any. Implementations must be fast and local.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// IdentityFunc adapts a function to the IdentityProvider interface.
type IdentityFunc func(ctx context.Context) (string, bool)

func (f IdentityFunc) CurrentIdentity(ctx context.Context) (string, bool) {
	return f(ctx)
}

// RecordStore is the durable storage the wizard writes completed
// conversations to. FindProfile reports ErrProfileNotFound when the
// identity has no stored profile.
type RecordStore interface {
	FindProfile(ctx context.Context, clientID string) (*models.ClientProfile, error)
	InsertBooking(ctx context.Context, booking models.Booking) (string, error)
}

// Notifier delivers a best-effort push once a booking has been recorded.
type Notifier interface {
	NotifyBookingRecorded(ctx context.Context, booking models.Booking) error
}

// ReminderScheduler queues a flight reminder for a recorded booking.
type ReminderScheduler interface {
	ScheduleFlightReminder(booking models.Booking) error
}

// WizardService drives session-scoped booking conversations.
type WizardService interface {
	StartConversation(ctx context.Context) (*models.Conversation, error)
	GetConversation(ctx context.Context, sessionID string) (*models.Conversation, error)
	SubmitAnswer(ctx context.Context, sessionID, value string) (*models.Conversation, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.Conversation, error)
	SelectTime(ctx context.Context, sessionID, slot string) (*models.Conversation, error)
	RestartConversation(ctx context.Context, sessionID string) (*models.Conversation, error)
}

// DefaultWizardService implements WizardService with Redis-backed sessions.
type DefaultWizardService struct {
	Identity  IdentityProvider
	Store     RecordStore
	Cache     *redis.Client
	Notifier  Notifier          // optional
	Reminders ReminderScheduler // optional
}

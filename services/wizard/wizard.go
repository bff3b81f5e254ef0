// File: wizard/wizard_session_service.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"conectcliente/models"
	"conectcliente/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "atendimento:"
	sessionTTL       = 30 * time.Minute
)

// StartConversation creates a new conversation session, assigns it a unique
// session ID, and stores it in Redis.
func (s *DefaultWizardService) StartConversation(ctx context.Context) (*models.Conversation, error) {
	sessionID := uuid.New().String()

	clientID, _ := s.Identity.CurrentIdentity(ctx)
	conv := NewConversation(sessionID, clientID)

	if err := s.saveSession(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// GetConversation returns the current transcript for a session.
func (s *DefaultWizardService) GetConversation(ctx context.Context, sessionID string) (*models.Conversation, error) {
	return s.loadSession(ctx, sessionID)
}

// SubmitAnswer applies a client answer to the session's conversation.
func (s *DefaultWizardService) SubmitAnswer(ctx context.Context, sessionID, value string) (*models.Conversation, error) {
	return s.advanceSession(ctx, sessionID, value)
}

// SelectDate submits a calendar date for the date stage.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.Conversation, error) {
	return s.advanceSession(ctx, sessionID, date)
}

// SelectTime submits a time slot for the time stage.
func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID, slot string) (*models.Conversation, error) {
	return s.advanceSession(ctx, sessionID, slot)
}

// RestartConversation resets the session back to the first stage. Bookings
// already recorded are unaffected.
func (s *DefaultWizardService) RestartConversation(ctx context.Context, sessionID string) (*models.Conversation, error) {
	conv, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	Restart(conv)
	if err := s.saveSession(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// advanceSession loads the conversation, applies one answer, and saves it
// back. When the answer takes the conversation into the terminal stage the
// accumulated record is persisted in the background, exactly once: the
// Persisted flag is written to the session before the save is launched.
func (s *DefaultWizardService) advanceSession(ctx context.Context, sessionID, value string) (*models.Conversation, error) {
	conv, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := Submit(conv, value); err != nil {
		return nil, err
	}

	persistNow := conv.Finalized && !conv.Persisted
	if persistNow {
		conv.Persisted = true
	}

	if err := s.saveSession(ctx, conv); err != nil {
		return nil, err
	}

	if persistNow {
		// Identity resolution is fast and local, so do it before detaching
		// from the request context.
		clientID, ok := s.Identity.CurrentIdentity(ctx)
		if !ok {
			utils.GetLogger().Info("wizard: no authenticated identity at terminal stage, skipping booking save",
				zap.String("sessionID", sessionID))
			return conv, nil
		}
		snapshot := *conv
		go s.persistBooking(context.Background(), clientID, snapshot)
	}

	return conv, nil
}

// persistBooking writes the completed conversation as one booking record.
// The save is fire-and-forget: every failure is absorbed and logged, never
// retried, and never surfaced to the conversation.
func (s *DefaultWizardService) persistBooking(ctx context.Context, clientID string, conv models.Conversation) {
	logger := utils.GetLogger()

	profile, err := s.Store.FindProfile(ctx, clientID)
	if err != nil {
		logger.Error("wizard: abandoning booking save, profile lookup failed",
			zap.String("clientID", clientID),
			zap.String("sessionID", conv.SessionID),
			zap.Error(err))
		return
	}

	booking := models.Booking{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Answers:   conv.Answers,
		Service:   conv.Answers[models.StageService],
		Location:  conv.Answers[models.StageLocation],
		Date:      conv.Answers[models.StageDate],
		Time:      conv.Answers[models.StageTime],
		CreatedAt: time.Now(),
	}

	bookingID, err := s.Store.InsertBooking(ctx, booking)
	if err != nil {
		logger.Error("wizard: failed to save booking",
			zap.String("clientID", clientID),
			zap.String("sessionID", conv.SessionID),
			zap.Error(err))
		return
	}
	logger.Info("wizard: booking saved",
		zap.String("bookingID", bookingID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingRecorded(ctx, booking); err != nil {
			logger.Warn("wizard: booking push failed", zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleFlightReminder(booking); err != nil {
			logger.Warn("wizard: reminder scheduling failed", zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
}

func (s *DefaultWizardService) saveSession(ctx context.Context, conv *models.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+conv.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store conversation session: %w", err)
	}
	return nil
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.Conversation, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load conversation session: %w", err)
	}
	var conv models.Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, fmt.Errorf("failed to parse conversation session: %w", err)
	}
	return &conv, nil
}

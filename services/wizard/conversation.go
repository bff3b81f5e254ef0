package wizard

import (
	"fmt"
	"strings"
	"time"

	"conectcliente/models"

	"github.com/google/uuid"
)

// NewConversation creates a fresh conversation at the service stage and
// greets the client with the opening prompt.
func NewConversation(sessionID, clientID string) *models.Conversation {
	c := &models.Conversation{
		SessionID: sessionID,
		ClientID:  clientID,
		StartedAt: time.Now(),
	}
	Restart(c)
	return c
}

// Restart resets a conversation back to the service stage, clearing the
// transcript and the collected answers. Previously persisted bookings are
// not touched. Callable from any state, including the terminal one.
func Restart(c *models.Conversation) {
	c.Messages = nil
	c.Answers = nil
	c.Stage = models.StageService
	c.Finalized = false
	c.Persisted = false
	appendMessage(c, models.SenderBot, Prompt(models.StageService))
}

// Submit applies one client answer to the conversation. On acceptance it
// echoes the answer, records it, advances the stage and appends the next
// prompt; entering the confirmation stage marks the conversation finalized.
// On rejection the conversation is left exactly as it was.
func Submit(c *models.Conversation, value string) error {
	if c.Finalized {
		return ErrConversationFinished
	}

	switch c.Stage {
	case models.StageService:
		if !contains(ServiceOptions(), value) {
			return ErrUnknownService
		}
		advance(c, value, value)
	case models.StageLocation:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyAnswer
		}
		advance(c, value, value)
	case models.StageDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return ErrInvalidDate
		}
		min, max := DateWindow(time.Now())
		// Dates in YYYY-MM-DD format compare correctly as strings; both
		// window bounds are inclusive.
		if value < min.Format("2006-01-02") || value > max.Format("2006-01-02") {
			return ErrDateOutOfRange
		}
		advance(c, value, fmt.Sprintf("Data escolhida: %s", value))
	case models.StageTime:
		if !contains(TimeSlots(), value) {
			return ErrUnknownSlot
		}
		advance(c, value, value)
	default:
		return ErrConversationFinished
	}
	return nil
}

// advance records an accepted answer and moves to the next stage.
func advance(c *models.Conversation, answer, echo string) {
	appendMessage(c, models.SenderClient, echo)
	c.Answers = append(c.Answers, answer)
	c.Stage++
	appendMessage(c, models.SenderBot, Prompt(c.Stage))
	if c.Stage == models.StageConfirmation {
		c.Finalized = true
	}
}

func appendMessage(c *models.Conversation, sender models.Sender, text string) {
	c.Messages = append(c.Messages, models.Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

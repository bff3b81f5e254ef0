package models

import "time"

// Stage identifies one step of the five-step booking conversation.
// Using a dedicated type keeps illegal stage values out of the state machine.
type Stage int

const (
	StageService      Stage = iota // choose one of the offered drone services
	StageLocation                  // free-text location within RJ
	StageDate                      // calendar date within the booking window
	StageTime                      // one of the fixed hourly slots
	StageConfirmation              // terminal; triggers persistence
)

// String returns a short label used in logs and API payloads.
func (s Stage) String() string {
	switch s {
	case StageService:
		return "service"
	case StageLocation:
		return "location"
	case StageDate:
		return "date"
	case StageTime:
		return "time"
	case StageConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// Sender tags which side of the conversation produced a message.
type Sender string

const (
	SenderBot    Sender = "bot"
	SenderClient Sender = "client"
)

// Message is one entry of the conversation transcript. The transcript is
// append-only; CreatedAt is used for display ordering only.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is the state of one wizard session: the transcript, the
// current stage, the answers collected so far and the terminal flags.
// Persisted guards the booking write so a conversation can never produce
// more than one record.
type Conversation struct {
	SessionID string    `json:"sessionId"`
	ClientID  string    `json:"clientId,omitempty"`
	Stage     Stage     `json:"stage"`
	Messages  []Message `json:"messages"`
	Answers   []string  `json:"answers"`
	Finalized bool      `json:"finalized"`
	Persisted bool      `json:"persisted"`
	StartedAt time.Time `json:"startedAt"`
}

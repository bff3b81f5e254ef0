package wizard

import "errors"

var (
	// ErrEmptyAnswer is returned when a free-text stage receives an empty or
	// whitespace-only value. The conversation is left untouched.
	ErrEmptyAnswer = errors.New("answer must not be empty")

	// ErrUnknownService is returned when the service stage receives a label
	// that is not part of the catalogue.
	ErrUnknownService = errors.New("unknown service option")

	// ErrUnknownSlot is returned when the time stage receives a value outside
	// the fixed slot list.
	ErrUnknownSlot = errors.New("unknown time slot")

	// ErrInvalidDate is returned when the date stage receives a value that is
	// not a valid YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateOutOfRange is returned when the selected date falls outside the
	// booking window.
	ErrDateOutOfRange = errors.New("date outside the booking window")

	// ErrConversationFinished is returned when an answer is submitted to a
	// conversation that already reached its terminal stage.
	ErrConversationFinished = errors.New("conversation already finished")

	// ErrSessionNotFound is returned when no conversation exists for the
	// given session ID (or it expired).
	ErrSessionNotFound = errors.New("conversation session not found or expired")

	// ErrProfileNotFound is reported by a RecordStore when the identity has
	// no stored profile.
	ErrProfileNotFound = errors.New("client profile not found")
)

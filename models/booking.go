package models

import "time"

// Booking is the persisted outcome of one completed conversation.
type Booking struct {
	ID       string `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	ClientID string `bson:"client_id" json:"client_id"` // Client who completed the conversation
	Email    string `bson:"email" json:"email"`         // Contact email, copied from the client profile
	Phone    string `bson:"phone" json:"phone"`         // Contact phone, copied from the client profile

	// Answers holds the raw answer sequence in stage order:
	// service, location, date, time.
	Answers []string `bson:"answers" json:"answers"`

	Service   string    `bson:"service" json:"service"`       // Selected drone service label
	Location  string    `bson:"location" json:"location"`     // Free-text location
	Date      string    `bson:"date" json:"date"`             // Flight date in "YYYY-MM-DD" format
	Time      string    `bson:"time" json:"time"`             // Flight slot in "HH:00" format
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when the booking was recorded
}

// BookingSummary is the per-flight view used by the schedule overview.
type BookingSummary struct {
	Service  string `json:"service"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Phone    string `json:"phone"`
}

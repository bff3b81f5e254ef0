package models

// ReminderPayload is the task payload for a scheduled flight reminder push.
type ReminderPayload struct {
	ClientID  string `json:"clientId"`
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

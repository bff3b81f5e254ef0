package models

import "time"

// Feedback is a star rating plus free-text comment left by a client.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	ClientID  string    `bson:"client_id" json:"client_id"`
	Email     string    `bson:"email" json:"email"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

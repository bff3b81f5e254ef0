package models

import "time"

// Client represents a registered app user.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"` // Formatted as (DD) 9XXXX-XXXX
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ClientProfile carries the contact fields a booking record copies from
// the stored profile.
type ClientProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Profile returns the contact view of a client.
func (c *Client) Profile() ClientProfile {
	return ClientProfile{ID: c.ID, Email: c.Email, Phone: c.Phone}
}

package client

import (
	clientRepo "conectcliente/database/repository/client"
	"conectcliente/models"
)

// RegistrationInput carries the fields collected by the sign-up form.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ClientService defines account management operations.
type ClientService interface {
	// Register validates the input and creates a new client account.
	Register(input RegistrationInput) (*models.Client, error)
	// Authenticate verifies credentials and issues a session token.
	Authenticate(email, password string) (*models.Client, string, error)
	// GetByID retrieves a client by ID.
	GetByID(id string) (*models.Client, error)
	// GetByEmail retrieves a client by email.
	GetByEmail(email string) (*models.Client, error)
	// UpdateFCMToken stores the device push token for a client.
	UpdateFCMToken(id, fcmToken string) error
	// RevokeAuthToken invalidates the stored session token.
	RevokeAuthToken(id string) error
	// Delete removes a client account.
	Delete(id string) error
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

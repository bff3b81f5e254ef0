package client

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	clientRepo "conectcliente/database/repository/client"
	"conectcliente/models"
	"conectcliente/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register validates the input and creates a new client account. Phone
// numbers must carry 11 digits (DDD + 9 + number) and are stored in the
// usual Brazilian display format.
func (s *DefaultClientService) Register(input RegistrationInput) (*models.Client, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	password := input.Password

	if name == "" || email == "" || strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("all fields are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.New("invalid email address")
	}

	digits := phoneDigits(input.Phone)
	if len(digits) != 11 {
		return nil, errors.New("phone number must have 11 digits (DDD + 9 + number)")
	}

	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, errors.New("email already registered")
	} else if err != nil && !errors.Is(err, clientRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newClient := &models.Client{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        FormatPhone(digits),
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(newClient); err != nil {
		utils.GetLogger().Error("Register: failed to create client", zap.Error(err))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return newClient, nil
}

// Authenticate verifies credentials and issues a session token valid for
// 24 hours. The token hash is stored on the profile so the auth middleware
// can resolve tokens back to clients.
func (s *DefaultClientService) Authenticate(email, password string) (*models.Client, string, error) {
	rec, err := s.Repo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			return nil, "", errors.New("invalid email or password")
		}
		utils.GetLogger().Error("Authenticate: failed to fetch client", zap.Error(err))
		return nil, "", errors.New("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	rec.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(rec); err != nil {
		return nil, "", fmt.Errorf("failed to store session token: %w", err)
	}
	return rec, token, nil
}

// GetByID retrieves a client by ID.
func (s *DefaultClientService) GetByID(id string) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

// GetByEmail retrieves a client by email.
func (s *DefaultClientService) GetByEmail(email string) (*models.Client, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateFCMToken stores the device push token for a client.
func (s *DefaultClientService) UpdateFCMToken(id, fcmToken string) error {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	rec.FCMToken = fcmToken
	return s.Repo.Update(rec)
}

// RevokeAuthToken invalidates the stored session token.
func (s *DefaultClientService) RevokeAuthToken(id string) error {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	rec.TokenHash = ""
	return s.Repo.Update(rec)
}

// Delete removes a client account.
func (s *DefaultClientService) Delete(id string) error {
	return s.Repo.Delete(id)
}

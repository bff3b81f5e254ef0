package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	feedbackRepo "conectcliente/database/repository/feedback"
	"conectcliente/models"
	"conectcliente/services/client"
)

// FeedbackService records client ratings.
type FeedbackService interface {
	// Submit validates and stores one feedback entry for a client.
	Submit(ctx context.Context, clientID string, rating int, comment string) (*models.Feedback, error)
	// List returns all feedback entries.
	List(ctx context.Context) ([]models.Feedback, error)
}

// DefaultFeedbackService implements FeedbackService.
type DefaultFeedbackService struct {
	Repo    feedbackRepo.FeedbackRepository
	Clients client.ClientService
}

func (s *DefaultFeedbackService) Submit(ctx context.Context, clientID string, rating int, comment string) (*models.Feedback, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, errors.New("comment must not be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	rec, err := s.Clients.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	fb := models.Feedback{
		ClientID: clientID,
		Email:    rec.Email,
		Rating:   rating,
		Comment:  comment,
	}
	id, err := s.Repo.Create(ctx, fb)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	fb.ID = id
	return &fb, nil
}

func (s *DefaultFeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.Repo.GetAll(ctx)
}

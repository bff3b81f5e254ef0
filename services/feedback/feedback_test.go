package feedback

import (
	"context"
	"testing"

	"conectcliente/models"
	"conectcliente/services/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	entries []models.Feedback
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb models.Feedback) (string, error) {
	fb.ID = uuid.New().String()
	f.entries = append(f.entries, fb)
	return fb.ID, nil
}

func (f *fakeFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return f.entries, nil
}

type stubClientService struct {
	client.ClientService
	rec *models.Client
}

func (s *stubClientService) GetByID(id string) (*models.Client, error) {
	return s.rec, nil
}

func TestSubmitFeedback(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := &DefaultFeedbackService{
		Repo:    repo,
		Clients: &stubClientService{rec: &models.Client{ID: "client-1", Email: "kayke@example.com"}},
	}

	fb, err := svc.Submit(context.Background(), "client-1", 5, "Serviço excelente!")
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, "kayke@example.com", fb.Email)
	assert.Equal(t, 5, fb.Rating)
	require.Len(t, repo.entries, 1)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc := &DefaultFeedbackService{
		Repo:    &fakeFeedbackRepo{},
		Clients: &stubClientService{rec: &models.Client{ID: "client-1"}},
	}

	_, err := svc.Submit(context.Background(), "client-1", 3, "   ")
	assert.ErrorContains(t, err, "comment")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), "client-1", rating, "ok")
		assert.ErrorContains(t, err, "rating")
	}
}

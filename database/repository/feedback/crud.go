package feedbackRepo

import (
	"context"
	"time"

	"conectcliente/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new feedback entry and returns its ID.
func (r *mongoFeedbackRepo) Create(ctx context.Context, fb models.Feedback) (string, error) {
	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	fb.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, fb)
	if err != nil {
		return "", err
	}
	return fb.ID, nil
}

// GetAll retrieves all feedback entries.
func (r *mongoFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

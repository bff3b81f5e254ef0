package feedbackRepo

import (
	"context"

	"conectcliente/database"
	"conectcliente/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// Create inserts a new feedback entry and returns its ID.
	Create(ctx context.Context, fb models.Feedback) (string, error)
	// GetAll retrieves all feedback entries.
	GetAll(ctx context.Context) ([]models.Feedback, error)
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo returns a new FeedbackRepository instance using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	db := database.MongoClient.Database("conectcliente")
	return &mongoFeedbackRepo{
		coll: db.Collection("feedback"),
	}
}

package bookingRepo

import (
	"context"

	"conectcliente/database"
	"conectcliente/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking and returns its ID.
	Create(ctx context.Context, booking models.Booking) (string, error)
	// GetByID returns a booking by its ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByClientID fetches all bookings made by a specific client.
	GetByClientID(ctx context.Context, clientID string) ([]models.Booking, error)
	// GetAllGroupedByDate returns every booking keyed by flight date, each
	// day's entries sorted by time slot.
	GetAllGroupedByDate(ctx context.Context) (map[string][]models.BookingSummary, error)
	// DeleteByID removes a booking by ID.
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("conectcliente")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

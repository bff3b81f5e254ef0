package wizard

import (
	"context"
	"errors"

	bookingRepo "conectcliente/database/repository/booking"
	clientRepo "conectcliente/database/repository/client"
	"conectcliente/models"
)

// mongoRecordStore adapts the Mongo repositories to the RecordStore
// contract consumed by the wizard.
type mongoRecordStore struct {
	clients  clientRepo.ClientRepository
	bookings bookingRepo.BookingRepository
}

// NewMongoRecordStore returns a RecordStore backed by the client and
// booking repositories.
func NewMongoRecordStore(clients clientRepo.ClientRepository, bookings bookingRepo.BookingRepository) RecordStore {
	return &mongoRecordStore{clients: clients, bookings: bookings}
}

func (s *mongoRecordStore) FindProfile(ctx context.Context, clientID string) (*models.ClientProfile, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	profile := client.Profile()
	return &profile, nil
}

func (s *mongoRecordStore) InsertBooking(ctx context.Context, booking models.Booking) (string, error) {
	return s.bookings.Create(ctx, booking)
}

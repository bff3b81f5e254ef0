package schedule

import (
	"context"

	bookingRepo "conectcliente/database/repository/booking"
	"conectcliente/models"
)

// ScheduleService exposes the booked-flights overview.
type ScheduleService interface {
	// Overview returns every booking keyed by flight date, each day's
	// entries sorted by time slot.
	Overview(ctx context.Context) (map[string][]models.BookingSummary, error)
	// ClientBookings returns the bookings made by one client.
	ClientBookings(ctx context.Context, clientID string) ([]models.Booking, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo bookingRepo.BookingRepository
}

func (s *DefaultScheduleService) Overview(ctx context.Context) (map[string][]models.BookingSummary, error) {
	return s.Repo.GetAllGroupedByDate(ctx)
}

func (s *DefaultScheduleService) ClientBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

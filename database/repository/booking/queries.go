package bookingRepo

import (
	"context"
	"sort"

	"conectcliente/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAllGroupedByDate returns every booking keyed by flight date, each day's
// entries sorted by time slot. Consumed by the schedule overview; the wizard
// only ever writes.
func (r *mongoBookingRepo) GetAllGroupedByDate(ctx context.Context) (map[string][]models.BookingSummary, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return groupBookings(bookings), nil
}

// groupBookings buckets bookings by flight date and sorts each day by slot.
func groupBookings(bookings []models.Booking) map[string][]models.BookingSummary {
	grouped := make(map[string][]models.BookingSummary)
	for _, b := range bookings {
		if b.Date == "" {
			continue
		}
		grouped[b.Date] = append(grouped[b.Date], models.BookingSummary{
			Service:  b.Service,
			Location: b.Location,
			Time:     b.Time,
			Phone:    b.Phone,
		})
	}

	for date := range grouped {
		day := grouped[date]
		sort.Slice(day, func(i, j int) bool { return day[i].Time < day[j].Time })
		grouped[date] = day
	}
	return grouped
}

package bookingRepo

import (
	"testing"

	"conectcliente/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBookings(t *testing.T) {
	bookings := []models.Booking{
		{Service: "Fotos Aéreas", Location: "Copacabana", Date: "2026-09-10", Time: "14:00", Phone: "(21) 99999-0001"},
		{Service: "Filmagens Aéreas", Location: "Ipanema", Date: "2026-09-10", Time: "09:00", Phone: "(21) 99999-0002"},
		{Service: "Cobertura de Eventos", Location: "Barra", Date: "2026-09-11", Time: "10:00", Phone: "(21) 99999-0003"},
		{Service: "Fotos Aéreas", Location: "Leblon", Date: "", Time: "08:00"}, // no date, skipped
	}

	grouped := groupBookings(bookings)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["2026-09-10"], 2)
	// Entries within a day are ordered by slot.
	assert.Equal(t, "09:00", grouped["2026-09-10"][0].Time)
	assert.Equal(t, "Ipanema", grouped["2026-09-10"][0].Location)
	assert.Equal(t, "14:00", grouped["2026-09-10"][1].Time)

	require.Len(t, grouped["2026-09-11"], 1)
	assert.Equal(t, "Cobertura de Eventos", grouped["2026-09-11"][0].Service)
}

func TestGroupBookingsEmpty(t *testing.T) {
	assert.Empty(t, groupBookings(nil))
}

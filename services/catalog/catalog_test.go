package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	services := List()
	require.Len(t, services, 7)
	for _, s := range services {
		assert.NotZero(t, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
	}

	titles := ServiceTitles()
	require.Len(t, titles, len(services))
	assert.Equal(t, "Fotos Aéreas", titles[0])
	assert.Equal(t, "Inspeções de Estruturas", titles[6])
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].Title = "mutated"
	assert.Equal(t, "Fotos Aéreas", List()[0].Title)
}

package matcher

import (
	"testing"

	"github.com/nvkalyan/case_intelligence_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Seeded(t *testing.T) {
	registry := NewRegistry()

	profiles := registry.ListAll()
	require.Len(t, profiles, 3)
	assert.Equal(t, int64(1), profiles[0].ID)
	assert.Equal(t, "Unknown Suspect A", profiles[0].Name)
	assert.Equal(t, int64(3), profiles[2].ID)
}

func TestRegistry_Register_AssignsNextID(t *testing.T) {
	registry := NewRegistry()

	created := registry.Register(models.OffenderProfile{
		Name:          "Unknown Suspect D",
		ModusOperandi: "Pickpocketing in crowded transit hubs",
		CrimeTypes:    []string{"Theft"},
		Active:        true,
	})

	assert.Equal(t, int64(4), created.ID)

	next := registry.Register(models.OffenderProfile{Name: "Unknown Suspect E"})
	assert.Equal(t, int64(5), next.ID)

	profiles := registry.ListAll()
	require.Len(t, profiles, 5)
	assert.Equal(t, "Unknown Suspect D", profiles[3].Name)
}

func TestRegistry_Search_CaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	results := registry.Search("MOTORCYCLE")

	require.Len(t, results, 1)
	assert.Equal(t, "Unknown Suspect A", results[0].Name)
}

func TestRegistry_Search_AcrossFields(t *testing.T) {
	registry := NewRegistry()

	// Crime type field
	byCrime := registry.Search("fraud")
	require.Len(t, byCrime, 1)
	assert.Equal(t, "Unknown Suspect B", byCrime[0].Name)

	// Physical description field
	byDescription := registry.Search("athletic")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Unknown Suspect C", byDescription[0].Name)

	// Preferred locations field
	byLocation := registry.Search("parking")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Unknown Suspect A", byLocation[0].Name)
}

func TestRegistry_Search_RegistryOrder(t *testing.T) {
	registry := NewRegistry()

	// "Robbery" appears in profiles 1 and 3; order must match the registry
	results := registry.Search("robbery")

	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, int64(3), results[1].ID)
}

func TestRegistry_Search_NoResults(t *testing.T) {
	registry := NewRegistry()

	results := registry.Search("submarine")

	assert.Empty(t, results)
}

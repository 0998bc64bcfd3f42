package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Instant_TrailingZ(t *testing.T) {
	inst := Normalize("2024-05-01T10:30:00Z", ModeInstant)

	require.True(t, inst.Valid)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), inst.Time)
}

func TestNormalize_Instant_ExplicitOffset(t *testing.T) {
	inst := Normalize("2024-05-01T10:30:00+02:00", ModeInstant)

	require.True(t, inst.Valid)
	// Always expressed as UTC
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), inst.Time)
	assert.Equal(t, time.UTC, inst.Time.Location())
}

func TestNormalize_Instant_NoOffsetAssumedUTC(t *testing.T) {
	inst := Normalize("2024-05-01T10:30:00", ModeInstant)

	require.True(t, inst.Valid)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), inst.Time)
}

func TestNormalize_Instant_FractionalSeconds(t *testing.T) {
	inst := Normalize("2024-05-01T10:30:00.123456", ModeInstant)

	require.True(t, inst.Valid)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC), inst.Time)
}

func TestNormalize_Instant_SpaceSeparator(t *testing.T) {
	inst := Normalize("2024-05-01 10:30:00", ModeInstant)

	require.True(t, inst.Valid)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), inst.Time)
}

func TestNormalize_DateOnly(t *testing.T) {
	inst := Normalize("2024-05-01", ModeDateOnly)

	require.True(t, inst.Valid)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), inst.Time)
}

func TestNormalize_DateOnly_RejectsFullInstant(t *testing.T) {
	inst := Normalize("2024-05-01T10:30:00Z", ModeDateOnly)

	assert.False(t, inst.Valid)
}

func TestNormalize_DateOnly_InvalidMonth(t *testing.T) {
	inst := Normalize("2024-13-01", ModeDateOnly)

	assert.False(t, inst.Valid)
}

func TestNormalize_Empty(t *testing.T) {
	assert.False(t, Normalize("", ModeInstant).Valid)
	assert.False(t, Normalize("", ModeDateOnly).Valid)
	assert.False(t, Normalize("   ", ModeInstant).Valid)
}

func TestNormalize_Garbage(t *testing.T) {
	assert.False(t, Normalize("not-a-date", ModeInstant).Valid)
	assert.False(t, Normalize("not-a-date", ModeDateOnly).Valid)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"2024-05-01T10:30:00Z",
		"2024-05-01T10:30:00+05:30",
		"2024-05-01T10:30:00.5",
		"2024-05-01 10:30:00",
	}

	for _, raw := range inputs {
		first := Normalize(raw, ModeInstant)
		require.True(t, first.Valid, raw)

		second := Normalize(first.ISO(), ModeInstant)
		require.True(t, second.Valid, raw)
		assert.True(t, first.Equal(second), "normalize not idempotent for %q", raw)
	}
}

func TestInstant_ISO_Absent(t *testing.T) {
	assert.Equal(t, "", Instant{}.ISO())
}

func TestInstant_Before_Absent(t *testing.T) {
	// An absent instant is before nothing, so it never qualifies for a window
	assert.False(t, Instant{}.Before(time.Now()))
}

package temporal

import (
	"strings"
	"time"
)

// Mode selects how a raw timestamp string is interpreted.
type Mode int

const (
	// ModeInstant parses ISO-8601 date-times. A trailing "Z" is UTC; a value
	// without any offset is assumed to already be UTC.
	ModeInstant Mode = iota
	// ModeDateOnly parses a bare YYYY-MM-DD calendar date as midnight UTC.
	ModeDateOnly
)

// Instant is a UTC-anchored point in time. Valid is false when the raw input
// was empty or unparseable; an absent instant must stay absent downstream,
// it is never substituted with "now" or the zero time.
type Instant struct {
	Time  time.Time
	Valid bool
}

// layouts tried for ModeInstant values that carry no offset. These are
// interpreted as UTC rather than local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Normalize converts a raw timestamp string into a UTC instant under the
// given mode. Empty or unparseable input yields an absent Instant; parse
// failures never propagate as errors.
func Normalize(raw string, mode Mode) Instant {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Instant{}
	}

	switch mode {
	case ModeDateOnly:
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return Instant{}
		}
		return Instant{Time: t, Valid: true}
	default:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return Instant{Time: t.UTC(), Valid: true}
		}
		for _, layout := range naiveLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
				return Instant{Time: t, Valid: true}
			}
		}
		return Instant{}
	}
}

// ISO renders the instant as an RFC3339 UTC string, or "" when absent.
// Feeding the result back through Normalize with ModeInstant reproduces
// the same instant.
func (i Instant) ISO() string {
	if !i.Valid {
		return ""
	}
	return i.Time.UTC().Format(time.RFC3339Nano)
}

// Before reports whether the instant is strictly before t. An absent
// instant is before nothing.
func (i Instant) Before(t time.Time) bool {
	return i.Valid && i.Time.Before(t)
}

// Equal reports whether both instants are present and denote the same time,
// or both are absent.
func (i Instant) Equal(other Instant) bool {
	if i.Valid != other.Valid {
		return false
	}
	if !i.Valid {
		return true
	}
	return i.Time.Equal(other.Time)
}

package schedule

import (
	"time"

	"hockey-notify-service/internal/providers"
)

// Game is one scheduled hockey game, normalized from the DaySmart document.
// Name fields may be empty when the backend omits the relationship.
type Game struct {
	ID           int64
	StartUTC     time.Time
	HomeTeam     string
	VisitingTeam string
	IsHome       bool
	Rink         string
	LockerRoom   string
}

// CalendarEvent is one parsed iCal VEVENT. End is zero when the feed has no
// DTEND; Location and Description may be empty.
type CalendarEvent struct {
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
}

// Duration returns the event length, defaulting to an hour when the feed has
// no usable DTEND.
func (e CalendarEvent) Duration() time.Duration {
	if e.End.IsZero() || !e.End.After(e.Start) {
		return time.Hour
	}
	return e.End.Sub(e.Start)
}

// Timestamp layouts the DaySmart backend has been observed to emit.
const (
	layoutNaive = "2006-01-02T15:04:05"
)

// ParseTimestamp normalizes a DaySmart timestamp to UTC. RFC3339 is tried
// first; the backend also emits naive datetimes which are taken as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(layoutNaive, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, &providers.ParseError{
		Source: "daysmart",
		Err:    &timestampError{raw: raw},
	}
}

type timestampError struct {
	raw string
}

func (e *timestampError) Error() string {
	return "unrecognized timestamp " + e.raw
}

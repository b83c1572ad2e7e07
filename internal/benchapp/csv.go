// Package benchapp turns calendar events into the CSV format BenchApp's
// schedule importer understands.
package benchapp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/mo"

	"hockey-notify-service/internal/domain/schedule"
	"hockey-notify-service/internal/timeutil"
)

// Filename is what the generated attachment is called in Discord.
const Filename = "benchapp_schedule.csv"

// header order is fixed by the BenchApp import contract.
var header = []string{
	"Type",
	"Game Type",
	"Title (Optional)",
	"Away",
	"Home",
	"Date",
	"Time",
	"Duration",
	"Location (Optional)",
	"Address (Optional)",
	"Notes (Optional)",
}

const (
	rowType     = "GAME"
	rowGameType = "REGULAR"
)

// Generate serializes events starting strictly after the cutoff into a
// BenchApp import CSV. Rows are ordered by ascending start time; an empty
// selection still yields the header row.
func Generate(events []schedule.CalendarEvent, cutoff time.Time) ([]byte, error) {
	selected := filterAfter(events, cutoff)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Start.Before(selected[j].Start)
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, event := range selected {
		if err := w.Write(mapRow(event)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HasRows reports whether a generated CSV contains anything besides the header.
func HasRows(data []byte) bool {
	for i, line := range bytes.Split(data, []byte("\n")) {
		if i == 0 {
			continue
		}
		if len(bytes.TrimSpace(line)) > 0 {
			return true
		}
	}
	return false
}

// Caption builds the Discord message accompanying the CSV attachment.
func Caption(events []schedule.CalendarEvent, cutoff time.Time) string {
	if latest, ok := LatestGameDate(events, cutoff).Get(); ok {
		return fmt.Sprintf("BenchApp import schedule attached. Games scheduled until %s.", timeutil.FormatDate(latest))
	}
	return "BenchApp import schedule attached. No upcoming games found."
}

// LatestGameDate returns the start of the last event after the cutoff.
func LatestGameDate(events []schedule.CalendarEvent, cutoff time.Time) mo.Option[time.Time] {
	var latest mo.Option[time.Time]
	for _, event := range events {
		if !event.Start.After(cutoff) {
			continue
		}
		if current, ok := latest.Get(); !ok || event.Start.After(current) {
			latest = mo.Some(event.Start)
		}
	}
	return latest
}

func filterAfter(events []schedule.CalendarEvent, cutoff time.Time) []schedule.CalendarEvent {
	var out []schedule.CalendarEvent
	for _, event := range events {
		if event.Start.After(cutoff) {
			out = append(out, event)
		}
	}
	return out
}

func mapRow(event schedule.CalendarEvent) []string {
	home, away := splitHomeAway(event.Summary)
	location, address := splitLocationAddress(event.Location)

	mins := int(event.Duration().Minutes())
	duration := fmt.Sprintf("%d:%02d", mins/60, mins%60)

	date := fmt.Sprintf("%d/%d/%d", event.Start.Day(), int(event.Start.Month()), event.Start.Year())

	return []string{
		rowType,
		rowGameType,
		"",
		away,
		home,
		date,
		event.Start.Format("03:04 PM"),
		duration,
		location,
		address,
		event.Description,
	}
}

// splitHomeAway extracts the matchup from an event summary. A non-team
// prefix like "Kraken Hockey League Game - " is dropped when the remainder
// still looks like a matchup. "A vs B" reads home-first; "A @ B" away-first.
func splitHomeAway(summary string) (home, away string) {
	trimmed := summary
	if idx := strings.LastIndex(summary, " - "); idx >= 0 {
		candidate := summary[idx+3:]
		if strings.Contains(candidate, " @ ") || strings.Contains(candidate, " vs ") {
			trimmed = candidate
		}
	}

	if h, a, ok := strings.Cut(trimmed, " vs "); ok {
		return strings.TrimSpace(h), strings.TrimSpace(a)
	}
	if a, h, ok := strings.Cut(trimmed, " @ "); ok {
		return strings.TrimSpace(h), strings.TrimSpace(a)
	}
	return "", ""
}

// splitLocationAddress splits "Venue\nStreet address" into its two halves.
func splitLocationAddress(location string) (name, address string) {
	if n, a, ok := strings.Cut(location, "\n"); ok {
		return strings.TrimSpace(n), strings.TrimSpace(a)
	}
	if n, a, ok := strings.Cut(location, `\n`); ok {
		return strings.TrimSpace(n), strings.TrimSpace(a)
	}
	return strings.TrimSpace(location), ""
}

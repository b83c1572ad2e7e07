// Package ical fetches and parses iCalendar feeds into calendar events.
// Only the properties the BenchApp export needs are extracted; everything
// else in the feed is ignored.
package ical

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"hockey-notify-service/internal/domain/schedule"
	"hockey-notify-service/internal/logging"
	"hockey-notify-service/internal/providers"
)

const sourceName = "ical"

// Parse extracts VEVENT entries from an iCalendar body, in feed order.
// Individual events with a missing or malformed DTSTART are skipped with a
// warning; a body without a VCALENDAR wrapper is a hard parse error.
func Parse(body string, logger *slog.Logger) ([]schedule.CalendarEvent, error) {
	lines := unfold(body)

	inCalendar := false
	for _, line := range lines {
		if strings.EqualFold(line, "BEGIN:VCALENDAR") {
			inCalendar = true
			break
		}
	}
	if !inCalendar {
		return nil, &providers.ParseError{Source: sourceName, Err: errors.New("missing BEGIN:VCALENDAR")}
	}

	var events []schedule.CalendarEvent
	var current map[string]string
	for _, line := range lines {
		switch {
		case strings.EqualFold(line, "BEGIN:VEVENT"):
			current = map[string]string{}
		case strings.EqualFold(line, "END:VEVENT"):
			if current == nil {
				continue
			}
			if event, ok := buildEvent(current, logger); ok {
				events = append(events, event)
			}
			current = nil
		default:
			if current == nil {
				continue
			}
			name, value, ok := splitContentLine(line)
			if ok {
				current[name] = value
			}
		}
	}

	return events, nil
}

func buildEvent(props map[string]string, logger *slog.Logger) (schedule.CalendarEvent, bool) {
	rawStart, ok := props["DTSTART"]
	if !ok || rawStart == "" {
		logging.Warn(logger, "skipping event without DTSTART",
			slog.String(logging.FieldSource, sourceName),
			slog.String("summary", props["SUMMARY"]))
		return schedule.CalendarEvent{}, false
	}
	start, ok := parseDateTime(rawStart)
	if !ok {
		logging.Warn(logger, "skipping event with malformed DTSTART",
			slog.String(logging.FieldSource, sourceName),
			slog.String("dtstart", rawStart))
		return schedule.CalendarEvent{}, false
	}

	event := schedule.CalendarEvent{
		UID:         props["UID"],
		Summary:     unescapeText(props["SUMMARY"]),
		Start:       start,
		Location:    unescapeText(props["LOCATION"]),
		Description: unescapeText(props["DESCRIPTION"]),
	}
	if rawEnd, ok := props["DTEND"]; ok {
		if end, ok := parseDateTime(rawEnd); ok {
			event.End = end
		}
	}
	return event, true
}

// unfold joins continuation lines (RFC 5545: folded lines continue with a
// single space or tab) and normalizes line endings.
func unfold(body string) []string {
	raw := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	var lines []string
	for _, line := range raw {
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		trimmed := strings.TrimRight(line, "\r")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// splitContentLine splits "NAME;PARAM=X:value" into name and value,
// discarding property parameters.
func splitContentLine(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name := line[:idx]
	value := line[idx+1:]
	if paramIdx := strings.Index(name, ";"); paramIdx >= 0 {
		name = name[:paramIdx]
	}
	return strings.ToUpper(strings.TrimSpace(name)), value, true
}

// Calendar timestamps are taken as naive/UTC; the BenchApp CSV wants wall
// clock values as the feed publishes them.
func parseDateTime(raw string) (time.Time, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "Z")
	for _, layout := range []string{"20060102T150405", "20060102T1504"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation("20060102", s, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func unescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		case ',', ';', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

package benchapp

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hockey-notify-service/internal/domain/schedule"
)

var cutoff = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func eventAt(summary string, start time.Time) schedule.CalendarEvent {
	return schedule.CalendarEvent{Summary: summary, Start: start}
}

func TestGenerateEmptyYieldsHeaderOnly(t *testing.T) {
	data, err := Generate(nil, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Type,Game Type,Title (Optional),Away,Home,Date,Time,Duration," +
		"Location (Optional),Address (Optional),Notes (Optional)\n"
	if string(data) != want {
		t.Errorf("got %q, want header only", string(data))
	}
	if HasRows(data) {
		t.Error("header-only CSV should report no rows")
	}
}

func TestGenerateMapsFields(t *testing.T) {
	start := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	events := []schedule.CalendarEvent{
		{
			Summary:     "Ice Gators vs Puck Hogs",
			Start:       start,
			End:         start.Add(75 * time.Minute),
			Location:    "Olympic Rink\n123 Ice Way",
			Description: "Playoff seeding game",
		},
	}

	data, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	row := lines[1]
	want := "GAME,REGULAR,,Puck Hogs,Ice Gators,10/3/2024,06:30 PM,1:15," +
		"Olympic Rink,123 Ice Way,Playoff seeding game"
	if row != want {
		t.Errorf("row = %q\nwant %q", row, want)
	}
	if !HasRows(data) {
		t.Error("expected HasRows to be true")
	}
}

func TestGenerateQuotesCommaFields(t *testing.T) {
	start := cutoff.AddDate(0, 0, 1)
	events := []schedule.CalendarEvent{
		{Summary: "A vs B", Start: start, Location: "Rink, North Side"},
	}

	data, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"Rink, North Side"`)) {
		t.Errorf("comma field not quoted:\n%s", data)
	}
}

func TestGenerateSortsByStartAscending(t *testing.T) {
	events := []schedule.CalendarEvent{
		eventAt("Late vs Game", cutoff.AddDate(0, 0, 9)),
		eventAt("Early vs Game", cutoff.AddDate(0, 0, 2)),
		eventAt("Middle vs Game", cutoff.AddDate(0, 0, 5)),
	}

	data, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, want := range []string{"Early", "Middle", "Late"} {
		if !strings.Contains(lines[i+1], want) {
			t.Errorf("row %d = %q, want team %q", i+1, lines[i+1], want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	events := []schedule.CalendarEvent{
		eventAt("B vs C", cutoff.AddDate(0, 0, 3)),
		eventAt("A vs D", cutoff.AddDate(0, 0, 1)),
	}
	first, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same input should produce byte-identical output")
	}
}

func TestGenerateExcludesEventsAtOrBeforeCutoff(t *testing.T) {
	events := []schedule.CalendarEvent{
		eventAt("Past vs Game", cutoff.AddDate(0, 0, -1)),
		eventAt("Exact vs Game", cutoff),
		eventAt("Future vs Game", cutoff.AddDate(0, 0, 1)),
	}

	data, err := Generate(events, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "Past") || strings.Contains(out, "Exact") {
		t.Errorf("cutoff filter is strictly-after, got:\n%s", out)
	}
	if !strings.Contains(out, "Future") {
		t.Errorf("future event missing:\n%s", out)
	}
}

func TestSplitHomeAway(t *testing.T) {
	cases := []struct {
		summary    string
		home, away string
	}{
		{"Ice Gators vs Puck Hogs", "Ice Gators", "Puck Hogs"},
		{"Puck Hogs @ Ice Gators", "Ice Gators", "Puck Hogs"},
		{"Kraken Hockey League Game - Puck Hogs @ Ice Gators", "Ice Gators", "Puck Hogs"},
		{"Kraken Hockey League Game - Ice Gators vs Puck Hogs", "Ice Gators", "Puck Hogs"},
		{"Practice - open skate", "", ""},
		{"no matchup here", "", ""},
	}
	for _, tc := range cases {
		home, away := splitHomeAway(tc.summary)
		if home != tc.home || away != tc.away {
			t.Errorf("splitHomeAway(%q) = %q/%q, want %q/%q", tc.summary, home, away, tc.home, tc.away)
		}
	}
}

func TestCaption(t *testing.T) {
	events := []schedule.CalendarEvent{
		eventAt("A vs B", time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC)),
		eventAt("C vs D", time.Date(2024, 4, 2, 19, 0, 0, 0, time.UTC)),
	}
	got := Caption(events, cutoff)
	want := "BenchApp import schedule attached. Games scheduled until 2024-04-02."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	empty := Caption(nil, cutoff)
	if empty != "BenchApp import schedule attached. No upcoming games found." {
		t.Errorf("empty caption = %q", empty)
	}
}

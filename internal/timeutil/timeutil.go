package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Window is a closed time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Lookahead returns the window [now, now+days] used for upcoming-game checks.
func Lookahead(now time.Time, days int) Window {
	return Window{Start: now, End: now.AddDate(0, 0, days)}
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

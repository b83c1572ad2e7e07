package daysmart

import (
	"strings"
	"time"

	"hockey-notify-service/internal/domain/schedule"
)

const (
	fallbackHome      = "Home"
	fallbackVisitor   = "Visitor"
	fallbackRink      = "Unknown Arena"
	jerseyHome        = "Light"
	jerseyAway        = "Dark"
	messageDateLayout = "Mon Jan _2, 2006"
	messageTimeLayout = "3:04 PM"
)

// renderMessage produces the Discord-ready game reminder. Unknown fields fall
// back to neutral labels except the locker room line, which is omitted.
func renderMessage(game schedule.Game, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := game.StartUTC.In(loc)

	home := game.HomeTeam
	if home == "" {
		home = fallbackHome
	}
	visitor := game.VisitingTeam
	if visitor == "" {
		visitor = fallbackVisitor
	}
	rink := game.Rink
	if rink == "" {
		rink = fallbackRink
	}
	jersey := jerseyAway
	if game.IsHome {
		jersey = jerseyHome
	}

	var b strings.Builder
	b.WriteString(":hockey: Kraken Hockey League Game :goal:\n")
	b.WriteString(local.Format(messageDateLayout))
	b.WriteString("\n")
	b.WriteString(local.Format(messageTimeLayout))
	b.WriteString(" at ")
	b.WriteString(rink)
	b.WriteString("\n")
	b.WriteString(home)
	b.WriteString(" vs ")
	b.WriteString(visitor)
	if game.LockerRoom != "" {
		b.WriteString("\nLocker Room: ")
		b.WriteString(game.LockerRoom)
	}
	b.WriteString("\n:shirt: ")
	b.WriteString(jersey)
	b.WriteString(" Jerseys")
	return b.String()
}

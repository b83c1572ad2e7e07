package daysmart

import "time"

const (
	defaultBaseURL     = "https://apps.daysmartrecreation.com/dash/jsonapi/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/Los_Angeles"

	// LookaheadDays bounds how far out a game still warrants a reminder.
	LookaheadDays = 5

	// includeParam asks the backend to embed everything the reminder needs:
	// game and locker room events plus the teams and rinks they reference.
	includeParam = "events.eventType,events.homeTeam,events.visitingTeam," +
		"events.resource.facility,events.resourceArea,events.comments," +
		"league.playoffEvents.eventType,league.playoffEvents.homeTeam," +
		"league.playoffEvents.visitingTeam,league.playoffEvents.resource.facility," +
		"league.playoffEvents.resourceArea,league.playoffEvents.comments," +
		"league.programType,product.locations,programType,season,skillLevel," +
		"ageRange,sport"
)

package daysmart

import "encoding/json"

const sourceName = "daysmart"

// Included entry discriminators used by the DaySmart JSON:API document.
const (
	includedTypeEvent    = "events"
	includedTypeTeam     = "teams"
	includedTypeResource = "resources"
)

// Event type codes within the document.
const (
	eventTypeGame       = "G"
	eventTypeLockerRoom = "L"
	lockerRoomHome      = "H"
)

type teamDocument struct {
	Data     teamData       `json:"data"`
	Included []includedItem `json:"included"`
}

type teamData struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes teamAttributes `json:"attributes"`
}

type teamAttributes struct {
	Name              string `json:"name"`
	SeasonID          int64  `json:"season_id"`
	LeagueID          int64  `json:"league_id"`
	HasUpcomingEvents bool   `json:"has_upcoming_events"`
}

// includedItem defers attribute decoding until the type discriminator is
// known; entries with unrecognized types are ignored.
type includedItem struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

type eventAttributes struct {
	EventTypeID    string `json:"event_type_id"`
	Start          string `json:"start"`
	End            string `json:"end"`
	StartGMT       string `json:"start_gmt"`
	HomeTeamID     *int64 `json:"hteam_id"`
	VisitingTeamID *int64 `json:"vteam_id"`
	ResourceID     *int64 `json:"resource_id"`
	ParentEventID  *int64 `json:"parent_event_id"`
	LockerRoomType string `json:"locker_room_type"`
}

type basicTeamAttributes struct {
	Name string `json:"name"`
}

type resourceAttributes struct {
	Name string `json:"name"`
}

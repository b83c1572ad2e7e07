package daysmart

import (
	"encoding/json"
	"strconv"

	"hockey-notify-service/internal/domain/schedule"
)

type lockerPair struct {
	home *int64
	away *int64
}

type gameEvent struct {
	id    int64
	attrs eventAttributes
}

// mapDocument resolves the JSON:API team document into domain games. Name
// lookups happen here so downstream code never sees raw relationship IDs.
// Events with a malformed start timestamp are dropped; the document itself
// decoded, so one bad event should not sink the schedule.
func mapDocument(doc teamDocument) []schedule.Game {
	ourTeamID, _ := strconv.ParseInt(doc.Data.ID, 10, 64)

	teamNames := map[int64]string{}
	if ourTeamID != 0 {
		teamNames[ourTeamID] = doc.Data.Attributes.Name
	}
	resourceNames := map[int64]string{}
	lockers := map[int64]lockerPair{}
	var gameEvents []gameEvent

	for _, item := range doc.Included {
		switch item.Type {
		case includedTypeTeam:
			var attrs basicTeamAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			if id, err := strconv.ParseInt(item.ID, 10, 64); err == nil {
				teamNames[id] = attrs.Name
			}
		case includedTypeResource:
			var attrs resourceAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			if id, err := strconv.ParseInt(item.ID, 10, 64); err == nil && attrs.Name != "" {
				resourceNames[id] = attrs.Name
			}
		case includedTypeEvent:
			var attrs eventAttributes
			if err := json.Unmarshal(item.Attributes, &attrs); err != nil {
				continue
			}
			switch attrs.EventTypeID {
			case eventTypeGame, "g":
				if id, err := strconv.ParseInt(item.ID, 10, 64); err == nil {
					gameEvents = append(gameEvents, gameEvent{id: id, attrs: attrs})
				}
			case eventTypeLockerRoom, "l":
				recordLocker(lockers, attrs)
			}
		}
	}

	var games []schedule.Game
	for _, ev := range gameEvents {
		game, ok := mapGame(ev, ourTeamID, teamNames, resourceNames, lockers)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	return games
}

func recordLocker(lockers map[int64]lockerPair, attrs eventAttributes) {
	if attrs.ParentEventID == nil || attrs.ResourceID == nil {
		return
	}
	pair := lockers[*attrs.ParentEventID]
	if attrs.LockerRoomType == lockerRoomHome || attrs.LockerRoomType == "h" {
		pair.home = attrs.ResourceID
	} else {
		pair.away = attrs.ResourceID
	}
	lockers[*attrs.ParentEventID] = pair
}

func mapGame(ev gameEvent, ourTeamID int64, teamNames, resourceNames map[int64]string, lockers map[int64]lockerPair) (schedule.Game, bool) {
	raw := ev.attrs.StartGMT
	if raw == "" {
		raw = ev.attrs.Start
	}
	if raw == "" {
		return schedule.Game{}, false
	}
	start, err := schedule.ParseTimestamp(raw)
	if err != nil {
		return schedule.Game{}, false
	}

	isHome := ev.attrs.HomeTeamID != nil && ourTeamID != 0 && *ev.attrs.HomeTeamID == ourTeamID

	game := schedule.Game{
		ID:           ev.id,
		StartUTC:     start,
		HomeTeam:     lookupName(teamNames, ev.attrs.HomeTeamID),
		VisitingTeam: lookupName(teamNames, ev.attrs.VisitingTeamID),
		IsHome:       isHome,
		Rink:         lookupName(resourceNames, ev.attrs.ResourceID),
	}

	if pair, ok := lockers[ev.id]; ok {
		lockerID := pair.away
		if isHome {
			lockerID = pair.home
		}
		game.LockerRoom = lookupName(resourceNames, lockerID)
	}

	return game, true
}

func lookupName(names map[int64]string, id *int64) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

package stats

import (
	"fmt"
	"sort"
)

// roundView is the canonical, time ordered reconstruction of a single round.
// events is merged from every player's kill event list and sorted by
// timestamp; ties keep the order the events were reported in, so the
// reconstruction is deterministic even when timestamps collide.
type roundView struct {
	index     int
	kills     map[PlayerID]int
	deaths    map[PlayerID]int
	survivors map[PlayerID]struct{}
	damage    map[PlayerID][]DamageEvent
	events    []KillEvent
}

// reconstructRound builds the round view from the raw per player records.
// A round with no recorded events is valid: everyone survives.
func reconstructRound(round *RoundTelemetry, ros *roster) (*roundView, error) {
	view := &roundView{
		index:     round.Index,
		kills:     make(map[PlayerID]int),
		deaths:    make(map[PlayerID]int),
		survivors: make(map[PlayerID]struct{}, len(ros.players)),
		damage:    make(map[PlayerID][]DamageEvent),
	}

	// Everyone starts as a survivor and is removed when seen as a victim.
	for id := range ros.players {
		view.survivors[id] = struct{}{}
	}

	for _, rec := range round.PlayerStats {
		if !ros.has(rec.Player) {
			return nil, &TelemetryError{Round: round.Index, Field: "player_puuid", Reason: fmt.Sprintf("player %s is not on the roster", rec.Player)}
		}

		view.kills[rec.Player] = rec.Kills
		if rec.Kills != len(rec.KillEvents) {
			return nil, &TelemetryError{Round: round.Index, Field: "kills", Reason: fmt.Sprintf("player %s reports %d kills but %d kill events", rec.Player, rec.Kills, len(rec.KillEvents))}
		}

		for _, event := range rec.KillEvents {
			if event.TimeMs < 0 {
				return nil, &TelemetryError{Round: round.Index, Field: "kill_time_in_round", Reason: "negative kill timestamp"}
			}

			// The upstream sometimes omits the killer on events reported
			// under the killer's own record.
			if event.Killer == "" {
				event.Killer = rec.Player
			}
			if !ros.has(event.Killer) {
				return nil, &TelemetryError{Round: round.Index, Field: "killer_puuid", Reason: fmt.Sprintf("killer %s is not on the roster", event.Killer)}
			}
			if !ros.has(event.Victim) {
				return nil, &TelemetryError{Round: round.Index, Field: "victim_puuid", Reason: fmt.Sprintf("victim %s is not on the roster", event.Victim)}
			}

			view.deaths[event.Victim]++
			if view.deaths[event.Victim] > 1 {
				return nil, &TelemetryError{Round: round.Index, Field: "victim_puuid", Reason: fmt.Sprintf("player %s died more than once", event.Victim)}
			}
			delete(view.survivors, event.Victim)

			view.events = append(view.events, event)
		}

		if len(rec.DamageEvents) > 0 {
			view.damage[rec.Player] = rec.DamageEvents
		}
	}

	sort.SliceStable(view.events, func(i, j int) bool {
		return view.events[i].TimeMs < view.events[j].TimeMs
	})

	return view, nil
}

package stats

import (
	"math"
)

// Thresholds used by the per round qualification.
// The multi kill minimum and the trade window were calibrated against the
// reference scoreboard values; two kill rounds never count as multi kills.
const (
	multiKillThreshold = 3
	tradeWindowMs      = 3000
	assistDamageMin    = 50
)

// PlayerID is the opaque identity of a player inside a single match.
type PlayerID string

// Player is a single roster entry with the authoritative match totals.
type Player struct {
	ID      PlayerID
	Name    string
	Tag     string
	Team    string
	Kills   int
	Deaths  int
	Assists int
}

// MatchTelemetry is the immutable input for one full match.
type MatchTelemetry struct {
	Map     string
	Players []Player
	Rounds  []RoundTelemetry
}

// RoundTelemetry holds the raw per player records of a single round.
// Index is 1-based and must be sequential without gaps.
type RoundTelemetry struct {
	Index       int
	PlayerStats []PlayerRoundRecord
}

// PlayerRoundRecord is the raw stat block reported for one player in one round.
type PlayerRoundRecord struct {
	Player       PlayerID
	Kills        int
	KillEvents   []KillEvent
	DamageEvents []DamageEvent
}

// KillEvent is a single kill. TimeMs is milliseconds since round start.
// Killer may be left empty by the upstream, in which case the owner of the
// record the event was reported on is the killer.
type KillEvent struct {
	Killer     PlayerID
	Victim     PlayerID
	TimeMs     int
	Assistants []PlayerID
}

// DamageEvent is damage inflicted by the owning record's player.
type DamageEvent struct {
	Receiver PlayerID
	Damage   int
}

// PlayerMatchStats is the derived output for one player.
// Kills, deaths and assists are passed through from the roster summary and are
// never re-derived from the round records.
type PlayerMatchStats struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	Team    string `json:"team"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`

	KastRounds      int `json:"kastRounds"`
	KastPct         int `json:"kast"`
	FirstKills      int `json:"firstKills"`
	FirstDeaths     int `json:"firstDeaths"`
	MultiKillRounds int `json:"multiKills"`
	TradeRounds     int `json:"tradeRounds"`

	RoundsWithKill   int `json:"roundsWithKill"`
	RoundsWithAssist int `json:"roundsWithAssist"`
	RoundsSurvived   int `json:"roundsSurvived"`
}

// roster is the read-only identity and team lookup built once per match.
type roster struct {
	players map[PlayerID]*Player
}

func newRoster(players []Player) *roster {
	r := &roster{players: make(map[PlayerID]*Player, len(players))}
	for i := range players {
		r.players[players[i].ID] = &players[i]
	}
	return r
}

func (r *roster) has(id PlayerID) bool {
	_, ok := r.players[id]
	return ok
}

func (r *roster) team(id PlayerID) string {
	if p, ok := r.players[id]; ok {
		return p.Team
	}
	return ""
}

// Calculate derives the per player match statistics from the raw telemetry.
// It is a pure function: the input is never mutated and no state is kept
// between calls. A match with zero rounds is valid and yields all zero
// derived stats.
func Calculate(m *MatchTelemetry) (map[PlayerID]*PlayerMatchStats, error) {
	ros := newRoster(m.Players)

	results := make(map[PlayerID]*PlayerMatchStats, len(m.Players))
	for _, p := range m.Players {
		results[p.ID] = &PlayerMatchStats{
			Name:    p.Name,
			Tag:     p.Tag,
			Team:    p.Team,
			Kills:   p.Kills,
			Deaths:  p.Deaths,
			Assists: p.Assists,
		}
	}

	totalRounds := len(m.Rounds)
	for i := range m.Rounds {
		round := &m.Rounds[i]
		if round.Index != i+1 {
			return nil, &TelemetryError{Round: i + 1, Field: "index", Reason: "round indexes must be sequential starting at 1"}
		}

		view, err := reconstructRound(round, ros)
		if err != nil {
			return nil, err
		}

		for id, verdict := range qualifyRound(view, ros) {
			applyVerdict(results[id], verdict)
		}
	}

	for _, s := range results {
		s.KastPct = percentage(s.KastRounds, totalRounds)
	}

	return results, nil
}

// applyVerdict folds a single round verdict into the running totals.
// The trade round counter only increments when trade was the deciding KAST
// clause, keeping parity with the reference scoreboard.
func applyVerdict(s *PlayerMatchStats, v roundVerdict) {
	if v.kast() {
		s.KastRounds++
	}
	if v.kill {
		s.RoundsWithKill++
	}
	if v.assist {
		s.RoundsWithAssist++
	}
	if v.survive {
		s.RoundsSurvived++
	}
	if v.category() == categoryTrade {
		s.TradeRounds++
	}
	if v.firstKill {
		s.FirstKills++
	}
	if v.firstDeath {
		s.FirstDeaths++
	}
	if v.multiKill {
		s.MultiKillRounds++
	}
}

// percentage rounds half up, so 13 of 19 rounds is 68.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

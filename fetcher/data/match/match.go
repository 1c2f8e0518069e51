package matchfetcher

import (
	"encoding/json"
	"time"
)

// Handle the conversion of the unix timestamps from Henrik.
type HenrikTime time.Time

// Add the henrik time UnmarshalJSON.
func (ht *HenrikTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Seconds since epoch.
	*ht = HenrikTime(time.Unix(timestamp, 0))
	return nil
}

// Get the true time.
func (ht HenrikTime) Time() time.Time {
	return time.Time(ht)
}

// Envelope used by every Henrik endpoint.
type matchResponse struct {
	Data *MatchData `json:"data"`
}

type matchListResponse struct {
	Data []MatchData `json:"data"`
}

// Return type from the v2 match endpoint.
type MatchData struct {
	Metadata Metadata `json:"metadata"`
	Players  Players  `json:"players"`
	Rounds   []Round  `json:"rounds"`
}

// Metadata of the match.
type Metadata struct {
	Map          string     `json:"map"`
	MatchId      string     `json:"matchid"`
	Mode         string     `json:"mode"`
	RoundsPlayed int        `json:"rounds_played"`
	GameStart    HenrikTime `json:"game_start"`
	Region       string     `json:"region"`
}

// Players wraps the full roster.
type Players struct {
	AllPlayers []MatchPlayer `json:"all_players"`
}

// MatchPlayer contains one roster entry with the summary totals.
type MatchPlayer struct {
	Puuid string      `json:"puuid"`
	Name  string      `json:"name"`
	Tag   string      `json:"tag"`
	Team  string      `json:"team"`
	Stats PlayerStats `json:"stats"`
}

// Summary stats for the whole match.
type PlayerStats struct {
	Score   int `json:"score"`
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

// Round is one entry of the rounds array.
type Round struct {
	WinningTeam string             `json:"winning_team"`
	EndType     string             `json:"end_type"`
	PlayerStats []RoundPlayerStats `json:"player_stats"`
}

// RoundPlayerStats is the raw per player block of a round.
// The event lists may be absent entirely, which just means nothing happened.
type RoundPlayerStats struct {
	PlayerPuuid  string        `json:"player_puuid"`
	Kills        int           `json:"kills"`
	KillEvents   []KillEvent   `json:"kill_events"`
	DamageEvents []DamageEvent `json:"damage_events"`
}

// KillEvent as reported inside a player's round block.
type KillEvent struct {
	KillTimeInRound int         `json:"kill_time_in_round"`
	KillerPuuid     string      `json:"killer_puuid"`
	VictimPuuid     string      `json:"victim_puuid"`
	Assistants      []Assistant `json:"assistants"`
}

// Assistant entry of a kill event.
type Assistant struct {
	AssistantPuuid string `json:"assistant_puuid"`
	AssistantTeam  string `json:"assistant_team"`
}

// DamageEvent inflicted by the owning player during the round.
type DamageEvent struct {
	ReceiverPuuid string `json:"receiver_puuid"`
	Damage        int    `json:"damage"`
}

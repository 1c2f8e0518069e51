package dto

import (
	"time"
)

// MatchMetadata is the match level block of a stats response.
type MatchMetadata struct {
	MatchId      string    `json:"matchId"`
	Map          string    `json:"map"`
	Mode         string    `json:"mode"`
	RoundsPlayed int       `json:"roundsPlayed"`
	MatchStart   time.Time `json:"matchStart"`
	Region       string    `json:"region"`
}

// ScoreboardEntry is one player line of a processed match.
type ScoreboardEntry struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	Tagline  string `json:"tagline"`
	Team     string `json:"team"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	KastPct         int `json:"kast"`
	FirstKills      int `json:"firstKills"`
	FirstDeaths     int `json:"firstDeaths"`
	MultiKillRounds int `json:"multiKills"`
	TradeRounds     int `json:"tradeRounds"`
}

// MatchStats is the full response for one match.
type MatchStats struct {
	Metadata   MatchMetadata     `json:"metadata"`
	Scoreboard []ScoreboardEntry `json:"scoreboard"`
}

// PlayerMatchEntry is one historic stat line of a player, with the match it
// came from.
type PlayerMatchEntry struct {
	MatchId    string    `json:"matchId"`
	Map        string    `json:"map"`
	MatchStart time.Time `json:"matchStart"`

	ScoreboardEntry
}

// PlayerAverages holds the career aggregates over the stored matches.
type PlayerAverages struct {
	Matches     int     `json:"matches"`
	AvgKills    float64 `json:"avgKills"`
	AvgDeaths   float64 `json:"avgDeaths"`
	AvgAssists  float64 `json:"avgAssists"`
	AvgKastPct  float64 `json:"avgKast"`
	FirstKills  int     `json:"firstKills"`
	FirstDeaths int     `json:"firstDeaths"`
	MultiKills  int     `json:"multiKills"`
	TradeRounds int     `json:"tradeRounds"`
}

// PlayerStats is the full response for one player.
type PlayerStats struct {
	Puuid    string             `json:"puuid"`
	GameName string             `json:"gameName"`
	Tagline  string             `json:"tagline"`
	Averages PlayerAverages     `json:"averages"`
	Recent   []PlayerMatchEntry `json:"recent"`
}

// TrackedPlayer is the response for tracking operations.
type TrackedPlayer struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	Tagline  string `json:"tagline"`
	Region   string `json:"region"`
}

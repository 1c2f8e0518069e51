package models

import (
	"time"
)

// Database model for the match information.
type MatchInfo struct {
	ID           uint   `gorm:"primaryKey"`
	MatchId      string `gorm:"type:char(36);uniqueIndex"`
	Map          string `gorm:"type:varchar(30)"`
	Mode         string `gorm:"type:varchar(30);index"`
	RoundsPlayed int
	MatchStart   time.Time
	Region       string `gorm:"type:varchar(5)"`

	CreatedAt time.Time
}

// Database model for saving a player's derived performance in a given match.
// All derived columns come from the stats engine; kills, deaths and assists
// are the summary totals reported by the telemetry itself.
type MatchPlayerStats struct {
	ID      uint64 `gorm:"primaryKey"`
	MatchId uint   `gorm:"not null;index:idx_match_puuid,unique"`
	Puuid   string `gorm:"type:char(36);not null;index:idx_match_puuid,unique;index"`

	// Foreign key.
	Match MatchInfo `gorm:"foreignKey:MatchId"`

	GameName string `gorm:"type:varchar(100)"`
	Tagline  string `gorm:"type:varchar(5)"`
	Team     string `gorm:"type:varchar(10)"`

	Kills   int
	Deaths  int
	Assists int

	KastRounds      int
	KastPct         int
	FirstKills      int
	FirstDeaths     int
	MultiKillRounds int
	TradeRounds     int

	RoundsWithKill   int
	RoundsWithAssist int
	RoundsSurvived   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

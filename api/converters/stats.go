package converters

import (
	"math"

	"shootystats/api/dto"
	"shootystats/pkg/database/models"
)

// NewScoreboardEntry converts one stored stat row into its response shape.
func NewScoreboardEntry(row models.MatchPlayerStats) dto.ScoreboardEntry {
	return dto.ScoreboardEntry{
		Puuid:           row.Puuid,
		GameName:        row.GameName,
		Tagline:         row.Tagline,
		Team:            row.Team,
		Kills:           row.Kills,
		Deaths:          row.Deaths,
		Assists:         row.Assists,
		KastPct:         row.KastPct,
		FirstKills:      row.FirstKills,
		FirstDeaths:     row.FirstDeaths,
		MultiKillRounds: row.MultiKillRounds,
		TradeRounds:     row.TradeRounds,
	}
}

// ConvertMatchStats builds the full match response from the match info and
// its stored scoreboard.
func ConvertMatchStats(match *models.MatchInfo, rows []models.MatchPlayerStats) *dto.MatchStats {
	result := &dto.MatchStats{
		Metadata: dto.MatchMetadata{
			MatchId:      match.MatchId,
			Map:          match.Map,
			Mode:         match.Mode,
			RoundsPlayed: match.RoundsPlayed,
			MatchStart:   match.MatchStart,
			Region:       match.Region,
		},
		Scoreboard: make([]dto.ScoreboardEntry, 0, len(rows)),
	}

	for _, row := range rows {
		result.Scoreboard = append(result.Scoreboard, NewScoreboardEntry(row))
	}

	return result
}

// ConvertPlayerStats builds the player response, aggregating the career
// averages over every provided stat line.
func ConvertPlayerStats(puuid string, rows []models.MatchPlayerStats) *dto.PlayerStats {
	result := &dto.PlayerStats{
		Puuid:  puuid,
		Recent: make([]dto.PlayerMatchEntry, 0, len(rows)),
	}

	if len(rows) == 0 {
		return result
	}

	// The rows come newest first, so the first one carries the current name.
	result.GameName = rows[0].GameName
	result.Tagline = rows[0].Tagline

	var kills, deaths, assists, kast int
	for _, row := range rows {
		result.Recent = append(result.Recent, dto.PlayerMatchEntry{
			MatchId:         row.Match.MatchId,
			Map:             row.Match.Map,
			MatchStart:      row.Match.MatchStart,
			ScoreboardEntry: NewScoreboardEntry(row),
		})

		kills += row.Kills
		deaths += row.Deaths
		assists += row.Assists
		kast += row.KastPct

		result.Averages.FirstKills += row.FirstKills
		result.Averages.FirstDeaths += row.FirstDeaths
		result.Averages.MultiKills += row.MultiKillRounds
		result.Averages.TradeRounds += row.TradeRounds
	}

	matches := len(rows)
	result.Averages.Matches = matches
	result.Averages.AvgKills = roundAverage(kills, matches)
	result.Averages.AvgDeaths = roundAverage(deaths, matches)
	result.Averages.AvgAssists = roundAverage(assists, matches)
	result.Averages.AvgKastPct = roundAverage(kast, matches)

	return result
}

// Round to one decimal place.
func roundAverage(total int, count int) float64 {
	return math.Round(float64(total)/float64(count)*10) / 10
}

package matchservice

import (
	"encoding/json"
	"fmt"
	"time"

	"shootystats/fetcher/data"
	matchfetcher "shootystats/fetcher/data/match"
	"shootystats/fetcher/repositories"
	"shootystats/pkg/config"
	"shootystats/pkg/database/models"
	"shootystats/pkg/stats"

	"gorm.io/gorm"
)

// Only competitive matches feed the derived stats.
const trackedMode = "competitive"

// How many history entries to look at per account pass.
const historySize = 5

// MatchService handles the full pipeline for one match: fetch or read the
// raw telemetry, run the stats engine and persist the results.
type MatchService struct {
	fetcher *data.HenrikFetcher

	MatchRepository   repositories.MatchRepository
	RawRepository     repositories.RawMatchRepository
	TrackedRepository repositories.TrackedAccountRepository

	maxRetries int
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	Fetcher    *data.HenrikFetcher
	DB         *gorm.DB
	MaxRetries int
}

// NewMatchService creates a match service. A zero or negative retry count
// still yields a single fetch attempt.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	maxRetries := deps.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &MatchService{
		fetcher:           deps.Fetcher,
		MatchRepository:   repositories.NewMatchRepository(deps.DB),
		RawRepository:     repositories.NewRawMatchRepository(deps.DB, config.Database.RawCacheMaxBytes),
		TrackedRepository: repositories.NewTrackedAccountRepository(deps.DB),
		maxRetries:        maxRetries,
	}
}

// GetMatchData returns the telemetry of a match, reading the raw payload
// storage first and only hitting the Henrik API on a miss.
func (m *MatchService) GetMatchData(matchId string, onDemand bool) (*matchfetcher.MatchData, error) {
	if payload, found, err := m.RawRepository.Get(matchId); err == nil && found {
		var match matchfetcher.MatchData
		if err := json.Unmarshal([]byte(payload), &match); err == nil {
			return &match, nil
		}
		// A corrupt payload falls through to a refetch.
	}

	var match *matchfetcher.MatchData
	var err error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		match, err = m.fetcher.Match.GetMatchData(matchId, onDemand)
		if err == nil {
			break
		}

		// Wait a moment in case anything is wrong with the API and try again.
		time.Sleep(5 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get the match data: %w", err)
	}

	if payload, marshalErr := json.Marshal(match); marshalErr == nil {
		// A failed write only costs a refetch later.
		m.RawRepository.Put(matchId, string(payload))
	}

	return match, nil
}

// ProcessMatch runs the stats engine over one match telemetry and persists
// the match info plus one derived stat row per player.
func (m *MatchService) ProcessMatch(match *matchfetcher.MatchData) (*models.MatchInfo, error) {
	results, err := stats.Calculate(match.Telemetry())
	if err != nil {
		return nil, fmt.Errorf("stats calculation failed for match %s: %w", match.Metadata.MatchId, err)
	}

	matchInfo := &models.MatchInfo{
		MatchId:      match.Metadata.MatchId,
		Map:          match.Metadata.Map,
		Mode:         match.Metadata.Mode,
		RoundsPlayed: match.Metadata.RoundsPlayed,
		MatchStart:   match.Metadata.GameStart.Time(),
		Region:       match.Metadata.Region,
	}
	if err := m.MatchRepository.CreateMatchInfo(matchInfo); err != nil {
		return nil, fmt.Errorf("couldn't create the match info: %w", err)
	}

	rows := make([]*models.MatchPlayerStats, 0, len(results))
	for puuid, playerStats := range results {
		rows = append(rows, &models.MatchPlayerStats{
			MatchId:          matchInfo.ID,
			Puuid:            string(puuid),
			GameName:         playerStats.Name,
			Tagline:          playerStats.Tag,
			Team:             playerStats.Team,
			Kills:            playerStats.Kills,
			Deaths:           playerStats.Deaths,
			Assists:          playerStats.Assists,
			KastRounds:       playerStats.KastRounds,
			KastPct:          playerStats.KastPct,
			FirstKills:       playerStats.FirstKills,
			FirstDeaths:      playerStats.FirstDeaths,
			MultiKillRounds:  playerStats.MultiKillRounds,
			TradeRounds:      playerStats.TradeRounds,
			RoundsWithKill:   playerStats.RoundsWithKill,
			RoundsWithAssist: playerStats.RoundsWithAssist,
			RoundsSurvived:   playerStats.RoundsSurvived,
		})
	}

	if err := m.MatchRepository.UpsertPlayerStats(rows); err != nil {
		return nil, fmt.Errorf("couldn't save the player stats: %w", err)
	}

	return matchInfo, nil
}

// FetchAndProcess is the on demand entrypoint: telemetry in, stats out.
func (m *MatchService) FetchAndProcess(matchId string, onDemand bool) (*models.MatchInfo, error) {
	match, err := m.GetMatchData(matchId, onDemand)
	if err != nil {
		return nil, err
	}
	return m.ProcessMatch(match)
}

// ProcessAccount fetches the recent competitive history of a tracked account
// and processes anything not stored yet. Returns how many new matches were
// processed.
func (m *MatchService) ProcessAccount(account *models.TrackedAccount) (int, error) {
	history, err := m.fetcher.Match.GetMatchHistory(account.Region, account.Puuid, historySize, trackedMode, false)
	if err != nil {
		return 0, fmt.Errorf("couldn't get the history of %s#%s: %w", account.GameName, account.Tagline, err)
	}

	ids := make([]string, 0, len(history))
	for _, match := range history {
		ids = append(ids, match.Metadata.MatchId)
	}

	fetched, err := m.MatchRepository.GetAlreadyFetchedMatches(ids)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(fetched))
	for _, match := range fetched {
		seen[match.MatchId] = struct{}{}
	}

	processed := 0
	var newest string
	for i := range history {
		match := &history[i]
		if newest == "" {
			newest = match.Metadata.MatchId
		}
		if _, ok := seen[match.Metadata.MatchId]; ok {
			continue
		}

		// The history payload already carries the full telemetry, so no
		// second request is needed.
		if payload, marshalErr := json.Marshal(match); marshalErr == nil {
			m.RawRepository.Put(match.Metadata.MatchId, string(payload))
		}

		if _, err := m.ProcessMatch(match); err != nil {
			return processed, err
		}
		processed++
	}

	if newest != "" && newest != account.LastMatchId {
		if err := m.TrackedRepository.SetLastMatch(account.Puuid, newest); err != nil {
			return processed, err
		}
	}

	return processed, nil
}

// RecalculateStored re-runs the engine over every stored raw payload.
// Lets formula changes propagate without a single API request.
func (m *MatchService) RecalculateStored() (int, error) {
	ids, err := m.RawRepository.ListIds()
	if err != nil {
		return 0, err
	}

	recalculated := 0
	for _, matchId := range ids {
		payload, found, err := m.RawRepository.Get(matchId)
		if err != nil || !found {
			continue
		}

		var match matchfetcher.MatchData
		if err := json.Unmarshal([]byte(payload), &match); err != nil {
			continue
		}

		if _, err := m.ProcessMatch(&match); err != nil {
			return recalculated, err
		}
		recalculated++
	}

	return recalculated, nil
}

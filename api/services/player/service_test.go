package playerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"shootystats/api/cache"
	"shootystats/api/filters"
	"shootystats/api/services/testutil"
	playerfetcher "shootystats/fetcher/data/player"
	itestutil "shootystats/internal/testutil"
	"shootystats/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*PlayerService, *itestutil.MockMatchRepository, *itestutil.MockTrackedAccountRepository, *testutil.MockStatsCache, *testutil.MockAccountResolver) {
	t.Helper()

	memCache := cache.NewMemCache()
	t.Cleanup(memCache.Close)

	matchRepo := new(itestutil.MockMatchRepository)
	trackedRepo := new(itestutil.MockTrackedAccountRepository)
	statsCache := new(testutil.MockStatsCache)
	resolver := new(testutil.MockAccountResolver)

	service := &PlayerService{
		memCache:          memCache,
		statsCache:        statsCache,
		resolver:          resolver,
		MatchRepository:   matchRepo,
		TrackedRepository: trackedRepo,
	}

	return service, matchRepo, trackedRepo, statsCache, resolver
}

func TestGetPlayerStatsAggregates(t *testing.T) {
	service, matchRepo, _, statsCache, _ := setupTestService(t)

	rows := []models.MatchPlayerStats{
		{
			Puuid: "p1", GameName: "NewName", Tagline: "NA1",
			Kills: 24, Deaths: 10, Assists: 4, KastPct: 81,
			FirstKills: 4, MultiKillRounds: 2, TradeRounds: 1,
			Match: models.MatchInfo{MatchId: "m2", Map: "Split", MatchStart: time.Unix(1700001000, 0)},
		},
		{
			Puuid: "p1", GameName: "OldName", Tagline: "NA1",
			Kills: 13, Deaths: 15, Assists: 8, KastPct: 62,
			FirstKills: 1, FirstDeaths: 3,
			Match: models.MatchInfo{MatchId: "m1", Map: "Ascent", MatchStart: time.Unix(1700000000, 0)},
		},
	}

	statsCache.On("GetPlayerStats", mock.Anything, "p1", 20).Return(nil, errors.New("cache miss"))
	statsCache.On("SetPlayerStats", mock.Anything, mock.AnythingOfType("*dto.PlayerStats"), 20).Return(nil)
	matchRepo.On("GetPlayerStatsByPuuid", "p1", 20).Return(rows, nil)

	filter := &filters.GetPlayerStatsFilter{Puuid: "p1", Limit: 20}
	result, err := service.GetPlayerStats(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, "NewName", result.GameName)
	assert.Len(t, result.Recent, 2)
	assert.Equal(t, "m2", result.Recent[0].MatchId)

	assert.Equal(t, 2, result.Averages.Matches)
	assert.InDelta(t, 18.5, result.Averages.AvgKills, 0.001)
	assert.InDelta(t, 12.5, result.Averages.AvgDeaths, 0.001)
	assert.InDelta(t, 6.0, result.Averages.AvgAssists, 0.001)
	assert.InDelta(t, 71.5, result.Averages.AvgKastPct, 0.001)
	assert.Equal(t, 5, result.Averages.FirstKills)
	assert.Equal(t, 3, result.Averages.FirstDeaths)
	assert.Equal(t, 2, result.Averages.MultiKills)
	assert.Equal(t, 1, result.Averages.TradeRounds)

	itestutil.VerifyAllMocks(t, matchRepo, statsCache)
}

func TestGetPlayerStatsEmptyHistory(t *testing.T) {
	service, matchRepo, _, statsCache, _ := setupTestService(t)

	statsCache.On("GetPlayerStats", mock.Anything, "p1", 20).Return(nil, errors.New("cache miss"))
	statsCache.On("SetPlayerStats", mock.Anything, mock.AnythingOfType("*dto.PlayerStats"), 20).Return(nil)
	matchRepo.On("GetPlayerStatsByPuuid", "p1", 20).Return([]models.MatchPlayerStats{}, nil)

	filter := &filters.GetPlayerStatsFilter{Puuid: "p1", Limit: 20}
	result, err := service.GetPlayerStats(context.Background(), filter)

	assert.NoError(t, err)
	assert.Empty(t, result.Recent)
	assert.Equal(t, 0, result.Averages.Matches)
}

func TestTrackPlayer(t *testing.T) {
	service, _, trackedRepo, _, resolver := setupTestService(t)

	account := &playerfetcher.Account{
		Puuid:  "33333333-3333-3333-3333-333333333333",
		Region: "na",
		Name:   "Shooty",
		Tag:    "NA1",
	}

	resolver.On("GetAccountByNameTag", "Shooty", "NA1", true).Return(account, nil)
	trackedRepo.On("UpsertAccount", mock.MatchedBy(func(tracked *models.TrackedAccount) bool {
		return tracked.Puuid == account.Puuid && tracked.GameName == "Shooty" && tracked.Region == "na"
	})).Return(nil)

	result, err := service.TrackPlayer(&filters.TrackPlayerBody{Name: "Shooty", Tag: "NA1"})

	assert.NoError(t, err)
	assert.Equal(t, account.Puuid, result.Puuid)

	itestutil.VerifyAllMocks(t, trackedRepo, resolver)
}

func TestTrackPlayerUnknownAccount(t *testing.T) {
	service, _, trackedRepo, _, resolver := setupTestService(t)

	resolver.On("GetAccountByNameTag", "Ghost", "NA1", true).
		Return(nil, errors.New("couldn't find the account Ghost#NA1"))

	_, err := service.TrackPlayer(&filters.TrackPlayerBody{Name: "Ghost", Tag: "NA1"})

	assert.ErrorContains(t, err, "Ghost#NA1")
	trackedRepo.AssertNotCalled(t, "UpsertAccount", mock.Anything)
}

func TestUntrackPlayer(t *testing.T) {
	service, _, trackedRepo, _, _ := setupTestService(t)

	account := &models.TrackedAccount{Puuid: "p1", GameName: "Shooty", Tagline: "NA1", Region: "na"}

	trackedRepo.On("GetAccountByNameTag", "Shooty", "NA1").Return(account, nil)
	trackedRepo.On("RemoveAccount", "p1").Return(nil)

	result, err := service.UntrackPlayer(&filters.TrackPlayerBody{Name: "Shooty", Tag: "NA1"})

	assert.NoError(t, err)
	assert.Equal(t, "p1", result.Puuid)

	itestutil.VerifyAllMocks(t, trackedRepo)
}

func TestUntrackPlayerNotTracked(t *testing.T) {
	service, _, trackedRepo, _, _ := setupTestService(t)

	trackedRepo.On("GetAccountByNameTag", "Ghost", "NA1").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UntrackPlayer(&filters.TrackPlayerBody{Name: "Ghost", Tag: "NA1"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	trackedRepo.AssertNotCalled(t, "RemoveAccount", mock.Anything)
}

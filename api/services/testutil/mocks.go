package testutil

import (
	"context"

	"shootystats/api/dto"
	playerfetcher "shootystats/fetcher/data/player"
	"shootystats/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mock implementations used on the api service tests.
// ============================================================================

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetMatchStats(ctx context.Context, matchId string) (*dto.MatchStats, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MatchStats), args.Error(1)
}

func (m *MockStatsCache) SetMatchStats(ctx context.Context, stats *dto.MatchStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsCache) GetPlayerStats(ctx context.Context, puuid string, limit int) (*dto.PlayerStats, error) {
	args := m.Called(ctx, puuid, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStats), args.Error(1)
}

func (m *MockStatsCache) SetPlayerStats(ctx context.Context, stats *dto.PlayerStats, limit int) error {
	args := m.Called(ctx, stats, limit)
	return args.Error(0)
}

type MockMatchProcessor struct {
	mock.Mock
}

func (m *MockMatchProcessor) FetchAndProcess(matchId string, onDemand bool) (*models.MatchInfo, error) {
	args := m.Called(matchId, onDemand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchInfo), args.Error(1)
}

type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) GetAccountByNameTag(name string, tag string, onDemand bool) (*playerfetcher.Account, error) {
	args := m.Called(name, tag, onDemand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

package testutil

import (
	"testing"

	"shootystats/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock implementations of the repositories.
// ============================================================================

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) CreateMatchInfo(match *models.MatchInfo) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetMatchByMatchId(matchId string) (*models.MatchInfo, error) {
	args := m.Called(matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) GetAlreadyFetchedMatches(matchIds []string) ([]models.MatchInfo, error) {
	args := m.Called(matchIds)
	return args.Get(0).([]models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) UpsertPlayerStats(stats []*models.MatchPlayerStats) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockMatchRepository) GetPlayerStatsByPuuid(puuid string, limit int) ([]models.MatchPlayerStats, error) {
	args := m.Called(puuid, limit)
	return args.Get(0).([]models.MatchPlayerStats), args.Error(1)
}

func (m *MockMatchRepository) GetPlayerStatsByMatchId(matchId uint) ([]models.MatchPlayerStats, error) {
	args := m.Called(matchId)
	return args.Get(0).([]models.MatchPlayerStats), args.Error(1)
}

type MockRawMatchRepository struct {
	mock.Mock
}

func (m *MockRawMatchRepository) Get(matchId string) (string, bool, error) {
	args := m.Called(matchId)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockRawMatchRepository) Put(matchId string, payload string) error {
	args := m.Called(matchId, payload)
	return args.Error(0)
}

func (m *MockRawMatchRepository) ListIds() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRawMatchRepository) Evict(maxBytes int64) (int64, error) {
	args := m.Called(maxBytes)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrackedAccountRepository struct {
	mock.Mock
}

func (m *MockTrackedAccountRepository) UpsertAccount(account *models.TrackedAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockTrackedAccountRepository) RemoveAccount(puuid string) error {
	args := m.Called(puuid)
	return args.Error(0)
}

func (m *MockTrackedAccountRepository) GetAccountByNameTag(name string, tag string) (*models.TrackedAccount, error) {
	args := m.Called(name, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrackedAccount), args.Error(1)
}

func (m *MockTrackedAccountRepository) ListAccounts() ([]models.TrackedAccount, error) {
	args := m.Called()
	return args.Get(0).([]models.TrackedAccount), args.Error(1)
}

func (m *MockTrackedAccountRepository) SetLastMatch(puuid string, matchId string) error {
	args := m.Called(puuid, matchId)
	return args.Error(0)
}

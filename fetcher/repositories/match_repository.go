package repositories

import (
	"shootystats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type MatchRepository interface {
	CreateMatchInfo(match *models.MatchInfo) error
	GetMatchByMatchId(matchId string) (*models.MatchInfo, error)
	GetAlreadyFetchedMatches(matchIds []string) ([]models.MatchInfo, error)
	UpsertPlayerStats(stats []*models.MatchPlayerStats) error
	GetPlayerStatsByPuuid(puuid string, limit int) ([]models.MatchPlayerStats, error)
	GetPlayerStatsByMatchId(matchId uint) ([]models.MatchPlayerStats, error)
}

// Match repository structure.
type matchRepository struct {
	db *gorm.DB
}

// Create a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// Simply create a match information.
func (mr *matchRepository) CreateMatchInfo(match *models.MatchInfo) error {
	return mr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoNothing: true,
	}).Create(&match).Error
}

// Get a single match by it's external match id.
func (mr *matchRepository) GetMatchByMatchId(matchId string) (*models.MatchInfo, error) {
	var match models.MatchInfo
	if err := mr.db.Where("match_id = ?", matchId).First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// Get all the already existing matches from a id list.
func (mr *matchRepository) GetAlreadyFetchedMatches(matchIds []string) ([]models.MatchInfo, error) {
	var matches []models.MatchInfo
	if len(matchIds) == 0 {
		return matches, nil
	}

	err := mr.db.Where("match_id IN ?", matchIds).Find(&matches).Error
	return matches, err
}

// Upsert the derived stats of a given match.
// Recalculation jobs rewrite the same rows, so conflicts update in place.
func (mr *matchRepository) UpsertPlayerStats(stats []*models.MatchPlayerStats) error {
	if len(stats) == 0 {
		return nil
	}

	return mr.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "match_id"}, {Name: "puuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kills", "deaths", "assists",
			"kast_rounds", "kast_pct", "first_kills", "first_deaths",
			"multi_kill_rounds", "trade_rounds",
			"rounds_with_kill", "rounds_with_assist", "rounds_survived",
			"updated_at",
		}),
	}).Create(&stats).Error
}

// Get the latest stored stat lines of a given player.
func (mr *matchRepository) GetPlayerStatsByPuuid(puuid string, limit int) ([]models.MatchPlayerStats, error) {
	var stats []models.MatchPlayerStats
	err := mr.db.
		Preload("Match").
		Where("puuid = ?", puuid).
		Order("created_at desc").
		Limit(limit).
		Find(&stats).Error
	return stats, err
}

// Get the stat lines of every player on a given match.
func (mr *matchRepository) GetPlayerStatsByMatchId(matchId uint) ([]models.MatchPlayerStats, error) {
	var stats []models.MatchPlayerStats
	err := mr.db.Where("match_id = ?", matchId).Find(&stats).Error
	return stats, err
}

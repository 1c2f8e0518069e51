package repositories

import (
	"time"

	"shootystats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type TrackedAccountRepository interface {
	UpsertAccount(account *models.TrackedAccount) error
	RemoveAccount(puuid string) error
	GetAccountByNameTag(name string, tag string) (*models.TrackedAccount, error)
	ListAccounts() ([]models.TrackedAccount, error)
	SetLastMatch(puuid string, matchId string) error
}

// Tracked account repository structure.
type trackedAccountRepository struct {
	db *gorm.DB
}

// Create a tracked account repository.
func NewTrackedAccountRepository(db *gorm.DB) TrackedAccountRepository {
	return &trackedAccountRepository{db: db}
}

// Create or refresh a tracked account.
// Name and tag can change over time while the puuid stays stable.
func (tr *trackedAccountRepository) UpsertAccount(account *models.TrackedAccount) error {
	return tr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"game_name", "tagline", "region", "updated_at"}),
	}).Create(account).Error
}

// Stop tracking a account.
func (tr *trackedAccountRepository) RemoveAccount(puuid string) error {
	return tr.db.Where("puuid = ?", puuid).Delete(&models.TrackedAccount{}).Error
}

// Get a account by it's name and tag.
func (tr *trackedAccountRepository) GetAccountByNameTag(name string, tag string) (*models.TrackedAccount, error) {
	var account models.TrackedAccount
	err := tr.db.
		Where("LOWER(game_name) = LOWER(?) AND LOWER(tagline) = LOWER(?)", name, tag).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// List every account being tracked.
func (tr *trackedAccountRepository) ListAccounts() ([]models.TrackedAccount, error) {
	var accounts []models.TrackedAccount
	err := tr.db.Order("last_match_fetch asc").Find(&accounts).Error
	return accounts, err
}

// Mark the newest processed match of a account.
func (tr *trackedAccountRepository) SetLastMatch(puuid string, matchId string) error {
	return tr.db.Model(&models.TrackedAccount{}).
		Where("puuid = ?", puuid).
		Updates(map[string]any{
			"last_match_id":    matchId,
			"last_match_fetch": time.Now(),
		}).Error
}

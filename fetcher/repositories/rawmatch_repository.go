package repositories

import (
	"errors"
	"time"

	"shootystats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Evict down to this share of the cap so a single insert doesn't trigger a
// cleanup on every following write.
const evictionTarget = 0.8

// Public Interface.
// This is the persistent cache for raw telemetry payloads: reads touch the
// access time, writes enforce the byte cap by evicting the least recently
// accessed entries.
type RawMatchRepository interface {
	Get(matchId string) (string, bool, error)
	Put(matchId string, payload string) error
	ListIds() ([]string, error)
	Evict(maxBytes int64) (int64, error)
}

// Raw match repository structure.
type rawMatchRepository struct {
	db       *gorm.DB
	maxBytes int64
}

// Create a raw match repository with the given byte cap.
func NewRawMatchRepository(db *gorm.DB, maxBytes int64) RawMatchRepository {
	return &rawMatchRepository{db: db, maxBytes: maxBytes}
}

// Get a stored payload and mark it as recently used.
// The second return is false when the key is absent, which is not an error.
func (rr *rawMatchRepository) Get(matchId string) (string, bool, error) {
	var row models.RawMatch
	if err := rr.db.Where("match_id = ?", matchId).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	rr.db.Model(&models.RawMatch{}).
		Where("match_id = ?", matchId).
		Update("last_accessed", time.Now())

	return row.Payload, true, nil
}

// Put stores a payload and runs the size based cleanup.
func (rr *rawMatchRepository) Put(matchId string, payload string) error {
	now := time.Now()
	row := &models.RawMatch{
		MatchId:      matchId,
		Payload:      payload,
		DataSize:     int64(len(payload)),
		StoredAt:     now,
		LastAccessed: now,
	}

	err := rr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "data_size", "stored_at", "last_accessed"}),
	}).Create(row).Error
	if err != nil {
		return err
	}

	_, err = rr.Evict(rr.maxBytes)
	return err
}

// List the ids of every stored payload, oldest stored first.
func (rr *rawMatchRepository) ListIds() ([]string, error) {
	var ids []string
	err := rr.db.Model(&models.RawMatch{}).
		Order("stored_at asc").
		Pluck("match_id", &ids).Error
	return ids, err
}

// Evict deletes least recently accessed rows until the total payload size is
// back under the target share of the cap. Returns the number of bytes freed.
func (rr *rawMatchRepository) Evict(maxBytes int64) (int64, error) {
	var total int64
	err := rr.db.Model(&models.RawMatch{}).
		Select("COALESCE(SUM(data_size), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	if total <= maxBytes {
		return 0, nil
	}

	target := int64(float64(maxBytes) * evictionTarget)

	// Walk the rows oldest access first and collect victims until under
	// the target.
	var rows []models.RawMatch
	err = rr.db.
		Select("match_id", "data_size").
		Order("last_accessed asc").
		Find(&rows).Error
	if err != nil {
		return 0, err
	}

	var victims []string
	var freed int64
	for _, row := range rows {
		if total-freed <= target {
			break
		}
		victims = append(victims, row.MatchId)
		freed += row.DataSize
	}

	if len(victims) == 0 {
		return 0, nil
	}

	err = rr.db.Where("match_id IN ?", victims).Delete(&models.RawMatch{}).Error
	if err != nil {
		return 0, err
	}

	return freed, nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Database model for an account being tracked by the fetcher.
type TrackedAccount struct {
	ID       uint   `gorm:"primaryKey"`
	Puuid    string `gorm:"type:char(36);uniqueIndex"`
	GameName string `gorm:"type:varchar(100);index:idx_name_tag"`
	Tagline  string `gorm:"type:varchar(5);index:idx_name_tag"`
	Region   string `gorm:"type:varchar(5)"`

	// Last match seen for this account, so the fetch loop only processes
	// matches it hasn't stored yet.
	LastMatchId    string `gorm:"type:char(36)"`
	LastMatchFetch time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Start the fetch window in the past so linking an account backfills some
// history instead of only matches played after the link.
func (t *TrackedAccount) BeforeCreate(tx *gorm.DB) (err error) {
	if t.LastMatchFetch.IsZero() {
		t.LastMatchFetch = time.Now().Add(-7 * 24 * time.Hour)
	}
	return nil
}

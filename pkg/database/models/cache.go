package models

import "time"

// Database model for the raw Henrik match payloads.
// Works as the persistent cache for telemetry: rows carry their own size and
// last access time so the storage can evict least recently used entries once
// the configured byte cap is exceeded.
type RawMatch struct {
	MatchId      string `gorm:"primaryKey;type:char(36)"`
	Payload      string `gorm:"type:jsonb"`
	DataSize     int64  `gorm:"index"`
	StoredAt     time.Time
	LastAccessed time.Time `gorm:"index"`
}

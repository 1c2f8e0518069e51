package jobs

import (
	"fmt"
	"log"

	"shootystats/fetcher/repositories"
	"shootystats/pkg/config"
	"shootystats/pkg/database"
)

// EvictRawMatches trims the raw payload storage back under its size budget,
// dropping the least recently accessed matches first.
func EvictRawMatches() error {
	log.Println("Starting raw match eviction.")

	// Create a new connection pool.
	db, err := database.NewConnection()
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	rawRepository := repositories.NewRawMatchRepository(db, config.Database.RawCacheMaxBytes)

	freed, err := rawRepository.Evict(config.Database.RawCacheMaxBytes)
	if err != nil {
		return fmt.Errorf("raw match eviction failed: %w", err)
	}

	log.Printf("Finished raw match eviction, freed %d bytes.", freed)
	return nil
}

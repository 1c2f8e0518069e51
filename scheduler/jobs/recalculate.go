package jobs

import (
	"fmt"
	"log"

	matchservice "shootystats/fetcher/services/match"
	"shootystats/pkg/database"
)

// RecalculateStoredMatches re-runs the stats engine over every stored raw
// payload, so formula adjustments reach old matches without refetching.
func RecalculateStoredMatches() error {
	log.Println("Starting stored match recalculation.")

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

	// No fetcher: the job only reads payloads already stored.
	service := matchservice.NewMatchService(&matchservice.MatchServiceDeps{
		DB:         db,
		MaxRetries: 1,
	})

	recalculated, err := service.RecalculateStored()
	if err != nil {
		return fmt.Errorf("recalculation failed after %d matches: %w", recalculated, err)
	}

	log.Printf("Finished recalculation of %d stored matches.", recalculated)
	return nil
}

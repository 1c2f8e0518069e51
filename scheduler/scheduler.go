package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shootystats/pkg/config"
	"shootystats/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the raw match eviction job - once per hour.
	_, err = s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(
			jobs.EvictRawMatches,
		),
		gocron.WithName("raw-match-eviction"),
		gocron.WithTags("storage"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create eviction job: %v", err)
	}

	// Register the recalculation job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.RecalculateStoredMatches,
		),
		gocron.WithName("stored-match-recalculation"),
		gocron.WithTags("stats"),
	)
	if err != nil {
		log.Fatalf("Failed to create recalculation job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down scheduler...")
}

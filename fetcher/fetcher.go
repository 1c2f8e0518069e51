package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shootystats/fetcher/data"
	"shootystats/fetcher/queue"
	matchservice "shootystats/fetcher/services/match"
	"shootystats/pkg/config"
	"shootystats/pkg/database"

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

	db, err := database.NewConnection()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	if err := database.RunMigrations(sqlDB); err != nil {
		log.Fatalf("Couldn't run the migrations: %v", err)
	}

	service := matchservice.NewMatchService(&matchservice.MatchServiceDeps{
		Fetcher:    data.CreateHenrikFetcher(),
		DB:         db,
		MaxRetries: 3,
	})

	trackedQueue, err := queue.NewTrackedQueue(service)
	if err != nil {
		log.Fatal(err)
	}

	// Start the fetch loop.
	go trackedQueue.Run()

	handleShutdown()
}

// Handle the shutdown of the fetcher.
func handleShutdown() {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-signalChannel
	log.Printf("Received signal %v, shutting down.", sig)
}

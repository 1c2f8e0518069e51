package main

import (
	"log"
	"os"

	"shootystats/api/modules"
	"shootystats/api/routes"
	"shootystats/fetcher/data"
	fetchservice "shootystats/fetcher/services/match"
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

	// The api shares the fetch pipeline for on demand processing of matches
	// that were never stored.
	fetcher := data.CreateHenrikFetcher()
	processor := fetchservice.NewMatchService(&fetchservice.MatchServiceDeps{
		Fetcher:    fetcher,
		DB:         db,
		MaxRetries: 1,
	})

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(db, fetcher, processor)
	if err != nil {
		log.Fatal(err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.MatchHandler,
		module.PlayerHandler,
	)

	// Start the server.
	router.Run(":8080")
}

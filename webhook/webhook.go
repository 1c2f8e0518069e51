package main

import (
	"log"
	"net/http"
	"os"

	"shootystats/pkg/config"
	"shootystats/webhook/handlers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Small deploy listener: GitHub pushes to main trigger the update script.
func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	updateHandler := handlers.NewUpdateHandler(&handlers.UpdateHandlerDependencies{
		Secret: config.Webhook.Secret,
		Script: config.Webhook.UpdateScript,
	})

	engine := gin.Default()
	engine.POST("/update", updateHandler.HandleUpdate)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := engine.Run(":" + config.Webhook.Port); err != nil {
		log.Fatal(err)
	}
}

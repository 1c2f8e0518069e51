package queue

import (
	"fmt"
	"log"
	"time"

	matchservice "shootystats/fetcher/services/match"
	"shootystats/pkg/logger"
)

// TrackedQueueConfig is the configuration for the fetch loop.
type TrackedQueueConfig struct {
	SleepDuration time.Duration
}

// TrackedQueue is the main fetch process: it walks every tracked account and
// processes any new competitive matches.
type TrackedQueue struct {
	config  TrackedQueueConfig
	logger  *logger.NewLogger
	service *matchservice.MatchService
}

// NewDefaultQueueConfig returns a default configuration for the fetch loop.
func NewDefaultQueueConfig() *TrackedQueueConfig {
	return &TrackedQueueConfig{
		SleepDuration: 10 * time.Minute,
	}
}

// NewTrackedQueue creates the tracked account queue.
func NewTrackedQueue(service *matchservice.MatchService) (*TrackedQueue, error) {
	queueLogger, err := logger.CreateLogger()
	if err != nil {
		log.Printf("Failed to create the queue logger: %v", err)
		return nil, err
	}

	return &TrackedQueue{
		config:  *NewDefaultQueueConfig(),
		logger:  queueLogger,
		service: service,
	}, nil
}

// Run starts the fetch loop.
// Mainly responsible for keeping the derived stats of every tracked account
// up to date.
func (q *TrackedQueue) Run() {
	for {
		startTime := time.Now()
		q.processAccounts()

		q.logger.Infof("Finished executing after %v minutes.", time.Since(startTime).Minutes())

		objectKey := fmt.Sprintf("fetcher/%s.log", time.Now().Format("2006-01-02-15-04"))
		if err := q.logger.UploadToS3Bucket(objectKey); err != nil {
			log.Printf("Couldn't send the log to s3: %v", err)

			// Clean the file in the case it was a S3 error and not a file error.
			q.logger.CleanFile()
		} else {
			log.Printf("Successfully sent log to s3 with key: %s", objectKey)
		}

		// Sleep to wait new matches to happen.
		time.Sleep(q.config.SleepDuration)
	}
}

// processAccounts walks the tracked accounts, oldest fetch first.
func (q *TrackedQueue) processAccounts() {
	accounts, err := q.service.TrackedRepository.ListAccounts()
	if err != nil {
		q.logger.Errorf("Couldn't list the tracked accounts: %v", err)
		return
	}

	for i := range accounts {
		account := &accounts[i]

		q.logger.EmptyLine()
		q.logger.Infof("Starting fetching for %s#%s", account.GameName, account.Tagline)

		processed, err := q.service.ProcessAccount(account)
		if err != nil {
			q.logger.Errorf("Couldn't process the account %s#%s: %v", account.GameName, account.Tagline, err)
			continue
		}

		q.logger.Infof("Processed %d new matches for %s#%s", processed, account.GameName, account.Tagline)
	}
}

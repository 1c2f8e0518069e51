package data

import (
	matchfetcher "shootystats/fetcher/data/match"
	playerfetcher "shootystats/fetcher/data/player"
	"shootystats/fetcher/requests"
)

// Define a main fetcher against the Henrik API.
type HenrikFetcher struct {
	Player *playerfetcher.PlayerFetcher
	Match  *matchfetcher.MatchFetcher
}

// Function to instanciate the main fetcher.
// A single limiter is shared by every endpoint since the Henrik limits are
// global per key, not per endpoint.
func CreateHenrikFetcher() *HenrikFetcher {
	limiter := requests.CreateRateLimiter()

	return &HenrikFetcher{
		Player: playerfetcher.CreatePlayerFetcher(limiter),
		Match:  matchfetcher.CreateMatchFetcher(limiter),
	}
}

package matchfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"shootystats/fetcher/requests"
	"shootystats/pkg/config"
	"shootystats/pkg/messages"
)

// The match fetcher with it's limiter.
type MatchFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(limiter *requests.RateLimiter) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
	}
}

// Get a given match full telemetry by it's match id.
func (m *MatchFetcher) GetMatchData(matchId string, onDemand bool) (*MatchData, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	requestUrl := fmt.Sprintf("%s/v2/match/%s", config.Henrik.BaseURL, matchId)

	resp, err := requests.AuthRequest(requestUrl, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, requestUrl)
	}

	var envelope matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg)
	}

	return envelope.Data, nil
}

// Get the latest matches of a given player by it's puuid.
// The mode filter is optional and follows the Henrik naming (competitive,
// unrated...).
func (m *MatchFetcher) GetMatchHistory(region string, puuid string, size int, mode string, onDemand bool) ([]MatchData, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	query := url.Values{}
	query.Set("size", fmt.Sprintf("%d", size))
	if mode != "" {
		query.Set("mode", mode)
	}

	requestUrl := fmt.Sprintf("%s/v3/by-puuid/matches/%s/%s?%s", config.Henrik.BaseURL, region, puuid, query.Encode())

	resp, err := requests.AuthRequest(requestUrl, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, requestUrl)
	}

	var envelope matchListResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg)
	}

	return envelope.Data, nil
}

package playerfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"shootystats/fetcher/requests"
	"shootystats/pkg/config"
	"shootystats/pkg/messages"
)

// The player fetcher with it's limiter.
type PlayerFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the player fetcher.
func CreatePlayerFetcher(limiter *requests.RateLimiter) *PlayerFetcher {
	return &PlayerFetcher{
		limiter: limiter,
	}
}

// Envelope used by the account endpoint.
type accountResponse struct {
	Data *Account `json:"data"`
}

// Account information from the v1 account endpoint.
type Account struct {
	Puuid  string `json:"puuid"`
	Region string `json:"region"`
	Name   string `json:"name"`
	Tag    string `json:"tag"`
}

// Get the account of a given player by it's name and tag.
// Used to resolve a name#tag pair into a stable puuid before tracking.
func (p *PlayerFetcher) GetAccountByNameTag(name string, tag string, onDemand bool) (*Account, error) {
	if onDemand {
		p.limiter.WaitApi()
	} else {
		p.limiter.WaitJob()
	}

	requestUrl := fmt.Sprintf("%s/v1/account/%s/%s", config.Henrik.BaseURL, url.PathEscape(name), url.PathEscape(tag))

	resp, err := requests.AuthRequest(requestUrl, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf(messages.AccountNotFound, name, tag)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, requestUrl)
	}

	var envelope accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg)
	}

	return envelope.Data, nil
}

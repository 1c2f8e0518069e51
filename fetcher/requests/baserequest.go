package requests

import (
	"fmt"
	"net/http"
	"shootystats/pkg/config"
	"time"
)

var client = &http.Client{Timeout: 30 * time.Second}

// Do a authenticated request to the Henrik API.
// Return the response.
// The basic tier works without a key, so an empty key only drops the header.
func AuthRequest(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if config.Henrik.ApiKey != "" {
		req.Header.Set("Authorization", config.Henrik.ApiKey)
	}

	return client.Do(req)
}

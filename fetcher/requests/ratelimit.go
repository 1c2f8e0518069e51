package requests

import (
	"shootystats/pkg/config"
	"sync"
	"time"
)

// Single rate limiting window.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full Henrik rate limit, containing all the constraints.
// On demand requests only respect the API windows; background jobs are also
// spread out with a fetch interval so interactive requests never starve.
type RateLimiter struct {
	windows []*limitWindow

	// Fetch interval for the background job.
	fetchInterval time.Duration

	// Last fetch and the mutex.
	lastFetch time.Time
	mu        sync.Mutex
}

// Create a instance of the rate limiter from the configured limits.
func CreateRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
		fetchInterval: config.Limits.SlowInterval,
		lastFetch:     time.Now(),
	}
}

// Reset the count of any window that passed it's interval.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if all windows still have room.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Wait until a on demand request may run.
func (r *RateLimiter) WaitApi() {
	if r.canRunApi() {
		return
	}

	r.waitWindowsReset()

	r.WaitApi()
}

// Wait until the next background job slot.
func (r *RateLimiter) WaitJob() {
	if r.canRunJob() {
		return
	}

	if elapsed := time.Since(r.lastFetch); elapsed < r.fetchInterval {
		time.Sleep(r.fetchInterval - elapsed)
	}

	r.waitWindowsReset()

	r.WaitJob()
}

// Wait until all the rate limit windows are met.
func (r *RateLimiter) waitWindowsReset() {
	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		// See how much time till the next reset of this window.
		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	time.Sleep(waitTime)
}

// Verify if can run the job/background request.
func (r *RateLimiter) canRunJob() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if time.Since(r.lastFetch) < r.fetchInterval {
		return false
	}

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	r.lastFetch = time.Now()
	return true
}

// Verify if can run a on demand request.
func (r *RateLimiter) canRunApi() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}

package echolib

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const (
	DefaultLimitPerMinute = 60
	DefaultLimitPerHour   = 1000
	DefaultLimitPerDay    = 5000

	// DefaultRateLimiterCapacity is a number of client keys which are
	// tracked at the same time. The least recently seen keys are
	// evicted first.
	DefaultRateLimiterCapacity = 65536
)

// RateLimit is a ceiling of requests within a fixed time window.
type RateLimit struct {
	Limit  uint64
	Period time.Duration
}

func (r RateLimit) String() string {
	switch r.Period {
	case time.Second:
		return fmt.Sprintf("%d per 1 second", r.Limit)
	case time.Minute:
		return fmt.Sprintf("%d per 1 minute", r.Limit)
	case time.Hour:
		return fmt.Sprintf("%d per 1 hour", r.Limit)
	case 24 * time.Hour:
		return fmt.Sprintf("%d per 1 day", r.Limit)
	}

	return fmt.Sprintf("%d per %s", r.Limit, r.Period)
}

// DefaultRateLimits returns per minute, per hour and per day ceilings.
func DefaultRateLimits() []RateLimit {
	return []RateLimit{
		{Limit: DefaultLimitPerMinute, Period: time.Minute},
		{Limit: DefaultLimitPerHour, Period: time.Hour},
		{Limit: DefaultLimitPerDay, Period: 24 * time.Hour},
	}
}

type rateWindow struct {
	resetAt time.Time
	count   uint64
}

// RateLimiter counts requests per client key in fixed windows, one
// window per configured limit. A window opens on a first request after
// the previous one has expired.
//
// State lives in memory only and is bounded by capacity.
type RateLimiter struct {
	limits  []RateLimit
	mutex   sync.Mutex
	windows *simplelru.LRU[string, []rateWindow]
	now     func() time.Time
}

// Allow registers a request for a given key. If any ceiling is
// reached, request is not counted and Allow returns false, the limit
// which was exceeded and a duration until its window is reset.
func (r *RateLimiter) Allow(key string) (RateLimit, time.Duration, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()

	windows, ok := r.windows.Get(key)
	if !ok {
		windows = make([]rateWindow, len(r.limits))
		r.windows.Add(key, windows)
	}

	for i := range windows {
		if !now.Before(windows[i].resetAt) {
			windows[i] = rateWindow{
				resetAt: now.Add(r.limits[i].Period),
			}
		}
	}

	for i, limit := range r.limits {
		if windows[i].count >= limit.Limit {
			return limit, windows[i].resetAt.Sub(now), false
		}
	}

	for i := range windows {
		windows[i].count++
	}

	return RateLimit{}, 0, true
}

// Limits returns configured ceilings.
func (r *RateLimiter) Limits() []RateLimit {
	rv := make([]RateLimit, len(r.limits))
	copy(rv, r.limits)

	return rv
}

func NewRateLimiter(limits []RateLimit, capacity int) (*RateLimiter, error) {
	for _, v := range limits {
		if v.Limit == 0 || v.Period <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRateLimit, v)
		}
	}

	if capacity <= 0 {
		capacity = DefaultRateLimiterCapacity
	}

	windows, err := simplelru.NewLRU[string, []rateWindow](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create a storage for windows: %w", err)
	}

	rv := &RateLimiter{
		limits:  make([]RateLimit, len(limits)),
		windows: windows,
		now:     time.Now,
	}

	copy(rv.limits, limits)

	return rv, nil
}

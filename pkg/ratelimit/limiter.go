package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterStore hands out one limiter per key, created on first use.
type LimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	burst    int
}

func NewLimiterStore(r rate.Limit, burst int) *LimiterStore {
	return &LimiterStore{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

// NewPerMinuteStore allows perMinute events per key per minute, all of which
// may be spent at once. perMinute below 1 is treated as 1.
func NewPerMinuteStore(perMinute int) *LimiterStore {
	if perMinute < 1 {
		perMinute = 1
	}
	return NewLimiterStore(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

func (s *LimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limiter, exists := s.limiters[key]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(s.r, s.burst)
	s.limiters[key] = limiter
	return limiter
}

// Allow reports whether an event for key may happen now. It never blocks.
func (s *LimiterStore) Allow(key string) bool {
	return s.GetLimiter(key).Allow()
}

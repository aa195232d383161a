package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// pinGuard throttles failed PIN attempts per staff member and client, so one caller guessing PINs cannot
// lock the staff member out at every other desk. Successful checks are free.
type pinGuard struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newPINGuard(attempts int, window time.Duration) *pinGuard {
	if attempts < 1 {
		attempts = 1
	}

	if window <= 0 {
		window = time.Minute
	}

	return &pinGuard{
		limiters: map[string]*rate.Limiter{},
		limit:    rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
	}
}

func (g *pinGuard) limiter(staffID, client string) *rate.Limiter {
	key := staffID + "@" + client

	g.mu.Lock()
	defer g.mu.Unlock()

	limiter, exists := g.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(g.limit, g.burst)
		g.limiters[key] = limiter
	}

	return limiter
}

// Blocked reports whether client has used up its failed attempts for staffID.
func (g *pinGuard) Blocked(staffID, client string) bool {
	return g.limiter(staffID, client).Tokens() < 1
}

func (g *pinGuard) Fail(staffID, client string) {
	g.limiter(staffID, client).Allow()
}

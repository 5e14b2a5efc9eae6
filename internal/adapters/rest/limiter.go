package rest

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a caller's bucket survives without requests
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// userLimiters hands out one token bucket per caller and forgets idle callers
type userLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newUserLimiters(requestsPerSecond, burst int) *userLimiters {
	return &userLimiters{
		limiters:  make(map[string]*limiterEntry),
		limit:     rate.Limit(requestsPerSecond),
		burst:     burst,
		idleTTL:   limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (u *userLimiters) get(userID string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if now.Sub(u.lastSweep) >= u.idleTTL {
		u.sweep(now)
	}

	entry, exists := u.limiters[userID]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.limiters[userID] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops callers idle for longer than idleTTL. Caller holds mu.
func (u *userLimiters) sweep(now time.Time) {
	for userID, entry := range u.limiters {
		if now.Sub(entry.lastSeen) >= u.idleTTL {
			delete(u.limiters, userID)
		}
	}
	u.lastSweep = now
}

func (u *userLimiters) allow(userID string) bool {
	return u.get(userID).Allow()
}

func (u *userLimiters) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.limiters)
}

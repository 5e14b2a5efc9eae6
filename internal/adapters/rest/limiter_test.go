package rest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserLimiters_EvictsIdleCallers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiters := newUserLimiters(1, 1)
	limiters.now = func() time.Time { return now }
	limiters.lastSweep = now

	for i := 0; i < 50; i++ {
		limiters.allow(fmt.Sprintf("rotating-%d", i))
	}
	assert.Equal(t, 50, limiters.size())

	now = now.Add(limiterIdleTTL / 2)
	limiters.allow("regular")

	now = now.Add(limiterIdleTTL / 2)
	limiters.allow("regular")

	assert.Equal(t, 1, limiters.size(), "only the caller seen within the idle window remains")
}

func TestUserLimiters_ActiveCallerKeepsBucket(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiters := newUserLimiters(1, 1)
	limiters.now = func() time.Time { return now }
	limiters.lastSweep = now

	before := limiters.get("user-1")

	now = now.Add(limiterIdleTTL - time.Second)
	limiters.lastSweep = now.Add(-limiterIdleTTL)
	after := limiters.get("user-1")

	assert.Same(t, before, after)
	assert.Equal(t, 1, limiters.size())
}

package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// MockUserDirectory records has-country flags in memory
type MockUserDirectory struct {
	mu    sync.RWMutex
	flags map[string]bool
	Err   error
}

// NewMockUserDirectory creates a new mock user directory
func NewMockUserDirectory() *MockUserDirectory {
	return &MockUserDirectory{flags: make(map[string]bool)}
}

func (m *MockUserDirectory) SetHasCountry(ctx context.Context, userID shared.UserID, hasCountry bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.flags[userID.Value()] = hasCountry
	return nil
}

// HasCountry returns the recorded flag for the user
func (m *MockUserDirectory) HasCountry(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[userID]
}

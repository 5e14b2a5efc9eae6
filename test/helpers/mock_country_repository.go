package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// MockCountryRepository is an in-memory test double for CountryRepository.
// It stores snapshots so unsaved mutations on a loaded aggregate are not visible.
type MockCountryRepository struct {
	mu        sync.RWMutex
	byUser    map[string]*country.Country
	SaveCalls int

	// Injected failures
	FindErr   error
	SaveErr   error
	CreateErr error
}

// NewMockCountryRepository creates a new mock country repository
func NewMockCountryRepository() *MockCountryRepository {
	return &MockCountryRepository{
		byUser: make(map[string]*country.Country),
	}
}

// AddCountry stores a country directly, bypassing call counting
func (m *MockCountryRepository) AddCountry(c *country.Country) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[c.UserID().Value()] = snapshot(c)
}

// Stored returns a copy of what is currently persisted for the user, or nil
func (m *MockCountryRepository) Stored(userID string) *country.Country {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.byUser[userID]
	if !ok {
		return nil
	}
	return snapshot(c)
}

// Count returns the number of stored countries
func (m *MockCountryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byUser)
}

func (m *MockCountryRepository) FindByUserID(ctx context.Context, userID shared.UserID) (*country.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindErr != nil {
		return nil, m.FindErr
	}
	c, ok := m.byUser[userID.Value()]
	if !ok {
		return nil, shared.NewNotFoundError("country", userID.Value())
	}
	return snapshot(c), nil
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id string, userID shared.UserID) (*country.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindErr != nil {
		return nil, m.FindErr
	}
	c, ok := m.byUser[userID.Value()]
	if !ok || c.ID() != id {
		return nil, shared.NewNotFoundError("country", id)
	}
	return snapshot(c), nil
}

func (m *MockCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.byUser {
		if c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCountryRepository) Create(ctx context.Context, c *country.Country) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, existing := range m.byUser {
		if existing.Name() == c.Name() {
			return country.ErrNameTaken
		}
	}
	m.byUser[c.UserID().Value()] = snapshot(c)
	return nil
}

func (m *MockCountryRepository) Save(ctx context.Context, c *country.Country) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.byUser[c.UserID().Value()] = snapshot(c)
	return nil
}

func (m *MockCountryRepository) Delete(ctx context.Context, id string, userID shared.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byUser[userID.Value()]
	if !ok || c.ID() != id {
		return shared.NewNotFoundError("country", id)
	}
	delete(m.byUser, userID.Value())
	return nil
}

func snapshot(c *country.Country) *country.Country {
	return country.ReconstructCountry(
		c.ID(),
		c.UserID(),
		c.Name(),
		c.Government(),
		c.Values(),
		c.Flag(),
		c.Resources(),
		c.Buildings(),
		c.ConstructionQueue(),
		c.LastResourceUpdate(),
		c.CreatedAt(),
	)
}

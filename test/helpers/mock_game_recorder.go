package helpers

import (
	"sync"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

// MockGameRecorder captures game events for assertions
type MockGameRecorder struct {
	mu           sync.Mutex
	Advancements []country.AdvanceResult
	Admissions   []string
}

func (m *MockGameRecorder) RecordAdvancement(result country.AdvanceResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Advancements = append(m.Advancements, result)
}

func (m *MockGameRecorder) RecordAdmission(buildingType building.Type, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Admissions = append(m.Admissions, string(buildingType)+":"+outcome)
}

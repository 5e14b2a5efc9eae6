package country

import (
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

// Admission outcomes reported to the GameRecorder
const (
	OutcomeAccepted = "accepted"
)

// GameRecorder receives game-level events for observability
type GameRecorder interface {
	RecordAdvancement(result country.AdvanceResult)
	RecordAdmission(buildingType building.Type, outcome string)
}

// NoopRecorder discards every event
type NoopRecorder struct{}

func (NoopRecorder) RecordAdvancement(country.AdvanceResult) {}
func (NoopRecorder) RecordAdmission(building.Type, string)   {}

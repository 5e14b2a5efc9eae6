package country

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/nations-go/internal/domain/building"
)

// OwnedBuilding aggregates every completed instance of one building type
type OwnedBuilding struct {
	Type  building.Type `json:"type"`
	Count int           `json:"count"`
}

// ConstructionOrder is a queued promise to add one building instance
type ConstructionOrder struct {
	ID           string        `json:"id"`
	BuildingType building.Type `json:"buildingType"`
	StartedAt    time.Time     `json:"startedAt"`
	CompletesAt  time.Time     `json:"completesAt"`
}

// NewConstructionOrder starts an order at startedAt that completes after buildTime
func NewConstructionOrder(buildingType building.Type, startedAt time.Time, buildTime time.Duration) ConstructionOrder {
	return ConstructionOrder{
		ID:           uuid.NewString(),
		BuildingType: buildingType,
		StartedAt:    startedAt,
		CompletesAt:  startedAt.Add(buildTime),
	}
}

// IsCompleteAt reports whether the order is done at now (inclusive)
func (o ConstructionOrder) IsCompleteAt(now time.Time) bool {
	return !o.CompletesAt.After(now)
}

// Remaining returns the time left until completion, never negative
func (o ConstructionOrder) Remaining(now time.Time) time.Duration {
	if o.IsCompleteAt(now) {
		return 0
	}
	return o.CompletesAt.Sub(now)
}

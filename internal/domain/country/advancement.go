package country

import (
	"math"
	"time"

	"github.com/andrescamacho/nations-go/internal/domain/building"
)

// AdvanceThreshold is the minimum elapsed time, in hours, before an advancement is applied
const AdvanceThreshold = 0.1

// AdvanceResult describes what a single advancement did.
// When Advanced is false every other field is zero.
type AdvanceResult struct {
	Advanced     bool
	HoursElapsed float64
	Production   Production
	Gained       Resources
	Completed    []building.Type
}

// AdvancementEngine brings a country up to date with elapsed wall-clock time.
//
// Business Rules:
//  1. Under AdvanceThreshold hours since the last update nothing changes, so
//     sub-threshold time stays owed to the next advancement
//  2. Production is computed from the buildings owned before this call's promotions
//  3. Each resource gains floor(production * hours); floor moves negative deltas down
//  4. Environment is clamped to [0,100] once, after the delta
//  5. Orders with completesAt <= now are promoted in queue order
//  6. lastResourceUpdate becomes now
type AdvancementEngine struct {
	production *ProductionCalculator
}

// NewAdvancementEngine creates an engine backed by the given production calculator
func NewAdvancementEngine(production *ProductionCalculator) *AdvancementEngine {
	return &AdvancementEngine{production: production}
}

// Advance mutates the country in place. Persisting the result is the caller's job.
func (e *AdvancementEngine) Advance(c *Country, now time.Time) AdvanceResult {
	hours := now.Sub(c.lastResourceUpdate).Hours()
	if hours < AdvanceThreshold {
		return AdvanceResult{}
	}

	production := e.production.HourlyProduction(c)
	gained := Resources{
		Population:  floorDelta(production.Population, hours),
		Economy:     floorDelta(production.Economy, hours),
		Environment: floorDelta(production.Environment, hours),
	}

	c.resources.Population += gained.Population
	c.resources.Economy += gained.Economy
	c.resources.Environment += gained.Environment
	c.resources = c.resources.clampEnvironment()

	remaining := make([]ConstructionOrder, 0, len(c.constructionQueue))
	var completed []building.Type
	for _, order := range c.constructionQueue {
		if order.IsCompleteAt(now) {
			completed = append(completed, order.BuildingType)
			continue
		}
		remaining = append(remaining, order)
	}
	c.constructionQueue = remaining

	for _, t := range completed {
		c.addBuilding(t)
	}

	c.lastResourceUpdate = now

	return AdvanceResult{
		Advanced:     true,
		HoursElapsed: hours,
		Production:   production,
		Gained:       gained,
		Completed:    completed,
	}
}

// Production exposes the underlying calculator
func (e *AdvancementEngine) Production() *ProductionCalculator {
	return e.production
}

func floorDelta(perHour int, hours float64) int {
	return int(math.Floor(float64(perHour) * hours))
}

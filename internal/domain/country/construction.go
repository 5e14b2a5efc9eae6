package country

import (
	"time"

	"github.com/andrescamacho/nations-go/internal/domain/building"
)

// ConstructionResult is the outcome of an accepted construction request
type ConstructionResult struct {
	Advancement AdvanceResult
	Order       ConstructionOrder
}

// AdmissionController gates new construction orders.
//
// Checks, first failure wins:
//  1. the building type resolves in the catalog
//  2. (the country is advanced to now)
//  3. population >= requirements.population
//  4. economy >= requirements.economy
//  5. economy >= cost.economy
//
// Requirements are availability thresholds, cost is affordability. Both must pass.
type AdmissionController struct {
	catalog BuildingCatalog
	engine  *AdvancementEngine
}

// NewAdmissionController creates a controller that advances through engine
func NewAdmissionController(catalog BuildingCatalog, engine *AdvancementEngine) *AdmissionController {
	return &AdmissionController{
		catalog: catalog,
		engine:  engine,
	}
}

// Resolve looks up a building type, rejecting unknown keys
func (a *AdmissionController) Resolve(t building.Type) (building.Definition, error) {
	def, ok := a.catalog.Lookup(t)
	if !ok {
		return building.Definition{}, &AdmissionError{
			Reason:       ReasonInvalidBuildingType,
			BuildingType: t,
		}
	}
	return def, nil
}

// Construct advances the country and enqueues an order for t.
// The advancement result is returned even on rejection so the caller can persist it.
func (a *AdmissionController) Construct(c *Country, t building.Type, now time.Time) (ConstructionResult, error) {
	def, err := a.Resolve(t)
	if err != nil {
		return ConstructionResult{}, err
	}

	advancement := a.engine.Advance(c, now)
	result := ConstructionResult{Advancement: advancement}
	res := c.resources

	if res.Population < def.Requirements.Population {
		return result, &AdmissionError{
			Reason:       ReasonInsufficientPopulation,
			BuildingType: t,
			Required:     def.Requirements.Population,
			Available:    res.Population,
		}
	}
	if res.Economy < def.Requirements.Economy {
		return result, &AdmissionError{
			Reason:       ReasonInsufficientEconomy,
			BuildingType: t,
			Required:     def.Requirements.Economy,
			Available:    res.Economy,
		}
	}
	if res.Economy < def.Cost.Economy {
		return result, &AdmissionError{
			Reason:       ReasonCannotAfford,
			BuildingType: t,
			Required:     def.Cost.Economy,
			Available:    res.Economy,
		}
	}

	order := NewConstructionOrder(t, now, def.BuildDuration())
	c.enqueue(order, def.Cost.Economy)
	result.Order = order

	return result, nil
}

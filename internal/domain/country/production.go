package country

import "github.com/andrescamacho/nations-go/internal/domain/building"

// Production is a signed per-hour change for each resource
type Production struct {
	Population  int `json:"population"`
	Economy     int `json:"economy"`
	Environment int `json:"environment"`
}

// BaseProduction is the growth every country gets before building effects
var BaseProduction = Production{
	Population:  10,
	Economy:     100,
	Environment: 0,
}

// Add returns the element-wise sum
func (p Production) Add(other Production) Production {
	return Production{
		Population:  p.Population + other.Population,
		Economy:     p.Economy + other.Economy,
		Environment: p.Environment + other.Environment,
	}
}

// BuildingCatalog is the read-only view of the catalog the domain services need
type BuildingCatalog interface {
	Lookup(t building.Type) (building.Definition, bool)
}

// ProductionCalculator derives hourly production from owned buildings.
// It is a pure function of the country snapshot and the catalog.
type ProductionCalculator struct {
	catalog BuildingCatalog
	base    Production
}

// NewProductionCalculator creates a calculator using BaseProduction
func NewProductionCalculator(catalog BuildingCatalog) *ProductionCalculator {
	return &ProductionCalculator{
		catalog: catalog,
		base:    BaseProduction,
	}
}

// HourlyProduction returns base growth plus effects*count for every owned building.
// Buildings whose type is missing from the catalog contribute nothing.
func (pc *ProductionCalculator) HourlyProduction(c *Country) Production {
	production := pc.base

	for _, owned := range c.buildings {
		def, ok := pc.catalog.Lookup(owned.Type)
		if !ok {
			continue
		}
		production = production.Add(Production{
			Population:  def.Effects.Population * owned.Count,
			Economy:     def.Effects.Economy * owned.Count,
			Environment: def.Effects.Environment * owned.Count,
		})
	}

	return production
}

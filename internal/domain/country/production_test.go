package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

func TestHourlyProduction_BaseOnly(t *testing.T) {
	calc := country.NewProductionCalculator(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	assert.Equal(t, country.Production{Population: 10, Economy: 100, Environment: 0}, calc.HourlyProduction(c))
}

func TestHourlyProduction_IsAdditive(t *testing.T) {
	catalog := building.Default()
	calc := country.NewProductionCalculator(catalog)

	c := countryWith(country.DefaultResources(), []country.OwnedBuilding{
		{Type: building.TypeHouse, Count: 2},
		{Type: building.TypeFactory, Count: 1},
	}, nil)

	house, _ := catalog.Lookup(building.TypeHouse)
	factory, _ := catalog.Lookup(building.TypeFactory)
	expected := country.Production{
		Population:  10 + 2*house.Effects.Population + factory.Effects.Population,
		Economy:     100 + 2*house.Effects.Economy + factory.Effects.Economy,
		Environment: 0 + 2*house.Effects.Environment + factory.Effects.Environment,
	}

	assert.Equal(t, expected, calc.HourlyProduction(c))
	assert.Equal(t, country.Production{Population: 200, Economy: 160, Environment: -14}, calc.HourlyProduction(c))
}

func TestHourlyProduction_SkipsUnknownTypes(t *testing.T) {
	calc := country.NewProductionCalculator(building.Default())
	c := countryWith(country.DefaultResources(), []country.OwnedBuilding{
		{Type: "DEMOLISHED_MONUMENT", Count: 4},
		{Type: building.TypePark, Count: 1},
	}, nil)

	assert.Equal(t, country.Production{Population: 30, Economy: 95, Environment: 15}, calc.HourlyProduction(c))
}

func TestHourlyProduction_DoesNotMutate(t *testing.T) {
	calc := country.NewProductionCalculator(building.Default())
	c := countryWith(country.DefaultResources(), []country.OwnedBuilding{{Type: building.TypeHouse, Count: 1}}, nil)

	before := c.Resources()
	calc.HourlyProduction(c)
	calc.HourlyProduction(c)

	assert.Equal(t, before, c.Resources())
	assert.Equal(t, t0, c.LastResourceUpdate())
}

package country_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

func newEngine(catalog country.BuildingCatalog) *country.AdvancementEngine {
	return country.NewAdvancementEngine(country.NewProductionCalculator(catalog))
}

// blightCatalog has a single building that drains 17 population per hour,
// so one instance gives a net -7/hour against base growth.
func blightCatalog(t *testing.T) *building.Catalog {
	t.Helper()
	catalog, err := building.NewCatalog(map[building.Type]building.Definition{
		"BLIGHT": {
			Name:      "Blight",
			Cost:      building.Cost{Economy: 1},
			Effects:   building.Effects{Population: -17},
			BuildTime: 1,
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestAdvance_BelowThresholdIsNoop(t *testing.T) {
	engine := newEngine(building.Default())
	order := country.NewConstructionOrder(building.TypeHouse, t0.Add(-time.Hour), time.Hour)
	c := countryWith(country.DefaultResources(), nil, []country.ConstructionOrder{order})

	result := engine.Advance(c, t0.Add(5*time.Minute))

	assert.False(t, result.Advanced)
	assert.Equal(t, country.DefaultResources(), c.Resources())
	assert.Equal(t, t0, c.LastResourceUpdate())
	assert.Len(t, c.ConstructionQueue(), 1, "queue must not be touched by a throttled call")
	assert.Empty(t, c.Buildings())
}

func TestAdvance_ThrottleIdempotence(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	first := engine.Advance(c, t0.Add(time.Hour))
	require.True(t, first.Advanced)
	afterFirst := c.Resources()

	second := engine.Advance(c, t0.Add(time.Hour+5*time.Minute))

	assert.False(t, second.Advanced)
	assert.Equal(t, afterFirst, c.Resources())
	assert.Equal(t, t0.Add(time.Hour), c.LastResourceUpdate())
}

func TestAdvance_SubThresholdTimeIsBanked(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	// polling every minute never advances until 6 minutes have passed since t0
	for i := 1; i <= 5; i++ {
		engine.Advance(c, t0.Add(time.Duration(i)*time.Minute))
	}
	assert.Equal(t, t0, c.LastResourceUpdate())

	result := engine.Advance(c, t0.Add(6*time.Minute))

	require.True(t, result.Advanced)
	assert.InDelta(t, 0.1, result.HoursElapsed, 1e-9)
	assert.Equal(t, 10010, c.Resources().Economy)
	assert.Equal(t, 1001, c.Resources().Population)
}

func TestAdvance_ExactThresholdAdvances(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	result := engine.Advance(c, t0.Add(6*time.Minute))

	assert.True(t, result.Advanced)
	assert.Equal(t, t0.Add(6*time.Minute), c.LastResourceUpdate())
}

func TestAdvance_FloorTruncationPositive(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	engine.Advance(c, t0.Add(150*time.Minute))

	assert.Equal(t, 10000+250, c.Resources().Economy)
	assert.Equal(t, 1000+25, c.Resources().Population)
}

func TestAdvance_FloorTruncationNegative(t *testing.T) {
	engine := newEngine(blightCatalog(t))
	c := countryWith(country.DefaultResources(), []country.OwnedBuilding{{Type: "BLIGHT", Count: 1}}, nil)

	result := engine.Advance(c, t0.Add(2*time.Hour+18*time.Minute))

	require.True(t, result.Advanced)
	assert.Equal(t, -7, result.Production.Population)
	assert.Equal(t, -17, result.Gained.Population)
	assert.Equal(t, 1000-17, c.Resources().Population)
}

func TestAdvance_ClampsEnvironment(t *testing.T) {
	engine := newEngine(building.Default())

	high := countryWith(country.DefaultResources(), []country.OwnedBuilding{{Type: building.TypeSolarPlant, Count: 2}}, nil)
	engine.Advance(high, t0.Add(10*time.Hour))
	assert.Equal(t, 100, high.Resources().Environment)

	low := countryWith(country.Resources{Population: 5000, Economy: 5000, Environment: 30},
		[]country.OwnedBuilding{{Type: building.TypeFactory, Count: 3}}, nil)
	engine.Advance(low, t0.Add(2*time.Hour))
	assert.Equal(t, 0, low.Resources().Environment)
}

func TestAdvance_EnvironmentStaysInBounds(t *testing.T) {
	catalog := building.Default()
	engine := newEngine(catalog)
	types := catalog.Types()
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		var owned []country.OwnedBuilding
		for _, bt := range types {
			if n := rng.Intn(4); n > 0 {
				owned = append(owned, country.OwnedBuilding{Type: bt, Count: n})
			}
		}
		c := countryWith(country.Resources{Population: 1000, Economy: 10000, Environment: rng.Intn(101)}, owned, nil)

		now := t0
		for step := 0; step < 20; step++ {
			now = now.Add(time.Duration(rng.Intn(600)) * time.Minute)
			engine.Advance(c, now)

			env := c.Resources().Environment
			require.GreaterOrEqual(t, env, 0)
			require.LessOrEqual(t, env, 100)
		}
	}
}

func TestAdvance_CompletionBoundaryIsInclusive(t *testing.T) {
	engine := newEngine(building.Default())
	now := t0.Add(time.Hour)
	order := country.NewConstructionOrder(building.TypePark, t0, time.Hour)
	c := countryWith(country.DefaultResources(), nil, []country.ConstructionOrder{order})

	result := engine.Advance(c, now)

	assert.Equal(t, []building.Type{building.TypePark}, result.Completed)
	assert.Empty(t, c.ConstructionQueue())
	assert.Equal(t, []country.OwnedBuilding{{Type: building.TypePark, Count: 1}}, c.Buildings())
}

func TestAdvance_PromotesEveryCompletedOrder(t *testing.T) {
	engine := newEngine(building.Default())
	queue := []country.ConstructionOrder{
		country.NewConstructionOrder(building.TypeHouse, t0, time.Hour),
		country.NewConstructionOrder(building.TypeSolarPlant, t0, 3*time.Hour),
		country.NewConstructionOrder(building.TypeHouse, t0.Add(30*time.Minute), time.Hour),
		country.NewConstructionOrder(building.TypePark, t0, time.Hour),
	}
	c := countryWith(country.DefaultResources(), nil, queue)

	engine.Advance(c, t0.Add(2*time.Hour))

	assert.Equal(t, []country.OwnedBuilding{
		{Type: building.TypeHouse, Count: 2},
		{Type: building.TypePark, Count: 1},
	}, c.Buildings())

	remaining := c.ConstructionQueue()
	require.Len(t, remaining, 1)
	assert.Equal(t, queue[1].ID, remaining[0].ID)
}

func TestAdvance_MergesIntoExistingEntry(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(),
		[]country.OwnedBuilding{{Type: building.TypeOffice, Count: 3}},
		[]country.ConstructionOrder{country.NewConstructionOrder(building.TypeOffice, t0, time.Hour)},
	)

	engine.Advance(c, t0.Add(time.Hour))

	assert.Equal(t, []country.OwnedBuilding{{Type: building.TypeOffice, Count: 4}}, c.Buildings())
}

func TestAdvance_UsesPrePromotionBuildings(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil,
		[]country.ConstructionOrder{country.NewConstructionOrder(building.TypeHouse, t0, time.Hour)})

	result := engine.Advance(c, t0.Add(2*time.Hour))

	assert.Equal(t, country.BaseProduction, result.Production)
	assert.Equal(t, 1020, c.Resources().Population)
	assert.Equal(t, 1, c.BuildingCount(building.TypeHouse))
}

func TestAdvance_OrderIsPromotedExactlyOnce(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil,
		[]country.ConstructionOrder{country.NewConstructionOrder(building.TypeHouse, t0, time.Hour)})

	engine.Advance(c, t0.Add(time.Hour))
	engine.Advance(c, t0.Add(2*time.Hour))
	engine.Advance(c, t0.Add(5*time.Hour))

	assert.Equal(t, 1, c.BuildingCount(building.TypeHouse))
}

func TestAdvance_ClockGoingBackwardsIsIgnored(t *testing.T) {
	engine := newEngine(building.Default())
	c := countryWith(country.DefaultResources(), nil, nil)

	result := engine.Advance(c, t0.Add(-3*time.Hour))

	assert.False(t, result.Advanced)
	assert.Equal(t, t0, c.LastResourceUpdate())
	assert.Equal(t, country.DefaultResources(), c.Resources())
}

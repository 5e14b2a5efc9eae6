package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/country/commands"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
	"github.com/andrescamacho/nations-go/test/helpers"
)

type constructFixture struct {
	repo     *helpers.MockCountryRepository
	clock    *shared.MockClock
	recorder *helpers.MockGameRecorder
	handler  *commands.ConstructBuildingHandler
}

func newConstructFixture() *constructFixture {
	catalog := building.Default()
	engine := country.NewAdvancementEngine(country.NewProductionCalculator(catalog))
	f := &constructFixture{
		repo:     helpers.NewMockCountryRepository(),
		clock:    shared.NewMockClock(t0),
		recorder: &helpers.MockGameRecorder{},
	}
	reconciler := appCountry.NewReconciler(f.repo, engine, f.clock, f.recorder)
	f.handler = commands.NewConstructBuildingHandler(reconciler, country.NewAdmissionController(catalog, engine))
	return f
}

func requireAdmission(t *testing.T, err error, reason country.AdmissionReason) {
	t.Helper()
	var admission *country.AdmissionError
	require.True(t, errors.As(err, &admission), "expected admission error, got %v", err)
	assert.Equal(t, reason, admission.Reason)
}

func TestConstructBuilding_Success(t *testing.T) {
	f := newConstructFixture()
	f.repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{UserID: "user-1", LastUpdate: t0}))
	f.clock.Advance(time.Hour)

	resp, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "user-1",
		BuildingType: "HOUSE",
	})

	require.NoError(t, err)
	out := resp.(*commands.ConstructBuildingResponse)
	assert.Equal(t, country.Resources{Population: 1010, Economy: 9100, Environment: 100}, out.Resources)
	require.Len(t, out.ConstructionQueue, 1)
	assert.Equal(t, t0.Add(2*time.Hour), out.ConstructionQueue[0].CompletesAt)
	assert.Empty(t, out.Buildings)

	stored := f.repo.Stored("user-1")
	assert.Equal(t, 9100, stored.Resources().Economy)
	assert.Len(t, stored.ConstructionQueue(), 1)
	assert.Equal(t, []string{"HOUSE:accepted"}, f.recorder.Admissions)
}

func TestConstructBuilding_InvalidTypeBeforeCountryLookup(t *testing.T) {
	f := newConstructFixture()

	_, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "nobody",
		BuildingType: "CASINO",
	})

	requireAdmission(t, err, country.ReasonInvalidBuildingType)
	assert.Zero(t, f.repo.SaveCalls)
}

func TestConstructBuilding_NoCountry(t *testing.T) {
	f := newConstructFixture()

	_, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "nobody",
		BuildingType: "HOUSE",
	})

	assert.True(t, shared.IsNotFoundError(err))
}

func TestConstructBuilding_RejectionPersistsAdvancement(t *testing.T) {
	f := newConstructFixture()
	f.repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{
		UserID:     "user-1",
		Resources:  country.Resources{Population: 500, Economy: 100000, Environment: 80},
		LastUpdate: t0,
	}))
	f.clock.Advance(3 * time.Hour)

	_, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "user-1",
		BuildingType: "FACTORY",
	})

	requireAdmission(t, err, country.ReasonInsufficientPopulation)
	stored := f.repo.Stored("user-1")
	assert.Equal(t, 530, stored.Resources().Population)
	assert.Equal(t, t0.Add(3*time.Hour), stored.LastResourceUpdate())
	assert.Empty(t, stored.ConstructionQueue())
	assert.Equal(t, []string{"FACTORY:INSUFFICIENT_POPULATION"}, f.recorder.Admissions)
}

func TestConstructBuilding_RejectionWithoutAdvancementSkipsSave(t *testing.T) {
	f := newConstructFixture()
	f.repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{
		UserID:     "user-1",
		Resources:  country.Resources{Population: 1500, Economy: 4000, Environment: 100},
		LastUpdate: t0,
	}))

	_, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "user-1",
		BuildingType: "FACTORY",
	})

	requireAdmission(t, err, country.ReasonInsufficientEconomy)
	assert.Zero(t, f.repo.SaveCalls)
}

func TestConstructBuilding_SaveFailureSurfaces(t *testing.T) {
	f := newConstructFixture()
	f.repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{UserID: "user-1", LastUpdate: t0}))
	f.repo.SaveErr = errors.New("connection reset")

	_, err := f.handler.Handle(context.Background(), &commands.ConstructBuildingCommand{
		UserID:       "user-1",
		BuildingType: "HOUSE",
	})

	require.Error(t, err)
	assert.False(t, country.IsAdmissionError(err))
	assert.ErrorContains(t, err, "connection reset")
	assert.Empty(t, f.repo.Stored("user-1").ConstructionQueue())
}

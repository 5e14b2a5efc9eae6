package commands_test

import (
	"context"
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

func newFlagHandler(repo *helpers.MockCountryRepository, clock shared.Clock) *commands.UpdateFlagHandler {
	engine := country.NewAdvancementEngine(country.NewProductionCalculator(building.Default()))
	return commands.NewUpdateFlagHandler(repo, appCountry.NewReconciler(repo, engine, clock, nil))
}

func TestUpdateFlag_ReplacesFlagAndAdvances(t *testing.T) {
	repo := helpers.NewMockCountryRepository()
	repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{ID: "c1", UserID: "user-1", LastUpdate: t0}))
	handler := newFlagHandler(repo, shared.NewMockClock(t0.Add(2*time.Hour)))

	flag := &commands.FlagInput{BackgroundColor: "#000", Pattern: "circle", PatternColor: "#0f0"}
	_, err := handler.Handle(context.Background(), &commands.UpdateFlagCommand{
		UserID:    "user-1",
		CountryID: "c1",
		Flag:      flag,
	})

	require.NoError(t, err)
	stored := repo.Stored("user-1")
	assert.Equal(t, flag.ToFlag(), stored.Flag())
	assert.Equal(t, 10200, stored.Resources().Economy)
}

func TestUpdateFlag_OtherUsersCountryIsNotFound(t *testing.T) {
	repo := helpers.NewMockCountryRepository()
	repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{ID: "c1", UserID: "user-1", LastUpdate: t0}))
	handler := newFlagHandler(repo, shared.NewMockClock(t0))

	_, err := handler.Handle(context.Background(), &commands.UpdateFlagCommand{
		UserID:    "user-2",
		CountryID: "c1",
		Flag:      &commands.FlagInput{BackgroundColor: "#000", Pattern: "circle", PatternColor: "#0f0"},
	})

	assert.True(t, shared.IsNotFoundError(err))
}

func TestUpdateFlag_RequiresEveryProperty(t *testing.T) {
	repo := helpers.NewMockCountryRepository()
	repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{ID: "c1", UserID: "user-1", LastUpdate: t0}))
	handler := newFlagHandler(repo, shared.NewMockClock(t0))

	for _, flag := range []*commands.FlagInput{nil, {Pattern: "solid"}} {
		_, err := handler.Handle(context.Background(), &commands.UpdateFlagCommand{
			UserID:    "user-1",
			CountryID: "c1",
			Flag:      flag,
		})
		assert.Equal(t, "All flag properties are required", validationMessage(t, err))
	}
	assert.Equal(t, helpers.DefaultFlag(), repo.Stored("user-1").Flag())
}

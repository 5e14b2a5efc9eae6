package persistence_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/nations-go/internal/adapters/persistence"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
	"github.com/andrescamacho/nations-go/test/helpers"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func foundCountry(t *testing.T, userID, name string) *country.Country {
	t.Helper()
	c, err := country.NewCountry(
		shared.MustNewUserID(userID),
		name,
		country.GovernmentMonarchy,
		[]country.Value{"Honor", "Tradition"},
		helpers.DefaultFlag(),
		t0,
	)
	require.NoError(t, err)
	return c
}

func TestCountryRepository_CreateAndFind(t *testing.T) {
	// Arrange
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	c := foundCountry(t, "user-1", "Arendelle")

	// Act
	require.NoError(t, repo.Create(ctx, c))
	found, err := repo.FindByUserID(ctx, shared.MustNewUserID("user-1"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, c.ID(), found.ID())
	assert.Equal(t, "Arendelle", found.Name())
	assert.Equal(t, country.GovernmentMonarchy, found.Government())
	assert.Equal(t, []country.Value{"Honor", "Tradition"}, found.Values())
	assert.Equal(t, helpers.DefaultFlag(), found.Flag())
	assert.Equal(t, country.DefaultResources(), found.Resources())
	assert.Empty(t, found.Buildings())
	assert.Empty(t, found.ConstructionQueue())
	assert.True(t, t0.Equal(found.LastResourceUpdate()))
}

func TestCountryRepository_SaveRoundTripsWholeAggregate(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	c := foundCountry(t, "user-1", "Arendelle")
	require.NoError(t, repo.Create(ctx, c))

	catalog := building.Default()
	engine := country.NewAdvancementEngine(country.NewProductionCalculator(catalog))
	controller := country.NewAdmissionController(catalog, engine)
	_, err := controller.Construct(c, building.TypeHouse, t0.Add(time.Hour))
	require.NoError(t, err)
	_, err = controller.Construct(c, building.TypePark, t0.Add(time.Hour))
	require.NoError(t, err)
	engine.Advance(c, t0.Add(150*time.Minute))

	require.NoError(t, repo.Save(ctx, c))
	found, err := repo.FindByID(ctx, c.ID(), shared.MustNewUserID("user-1"))

	require.NoError(t, err)
	assert.Equal(t, c.Resources(), found.Resources())
	assert.Equal(t, []country.OwnedBuilding{
		{Type: building.TypeHouse, Count: 1},
		{Type: building.TypePark, Count: 1},
	}, found.Buildings())
	assert.Empty(t, found.ConstructionQueue())
	assert.True(t, t0.Add(150*time.Minute).Equal(found.LastResourceUpdate()))
}

func TestCountryRepository_QueuePreservesOrderAndTimes(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	queue := []country.ConstructionOrder{
		country.NewConstructionOrder(building.TypeSolarPlant, t0, 3*time.Hour),
		country.NewConstructionOrder(building.TypeHouse, t0.Add(time.Minute), time.Hour),
	}
	c := helpers.BuildCountry(helpers.CountryFixture{ID: "c-1", UserID: "user-1", Queue: queue, LastUpdate: t0})
	require.NoError(t, repo.Create(ctx, c))

	found, err := repo.FindByUserID(ctx, shared.MustNewUserID("user-1"))

	require.NoError(t, err)
	got := found.ConstructionQueue()
	require.Len(t, got, 2)
	for i := range queue {
		assert.Equal(t, queue[i].ID, got[i].ID)
		assert.Equal(t, queue[i].BuildingType, got[i].BuildingType)
		assert.True(t, queue[i].CompletesAt.Equal(got[i].CompletesAt))
	}
}

func TestCountryRepository_NotFound(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))

	_, err := repo.FindByUserID(context.Background(), shared.MustNewUserID("ghost"))

	assert.True(t, shared.IsNotFoundError(err))
}

func TestCountryRepository_FindByIDIsScopedToOwner(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	c := foundCountry(t, "user-1", "Arendelle")
	require.NoError(t, repo.Create(ctx, c))

	_, err := repo.FindByID(ctx, c.ID(), shared.MustNewUserID("user-2"))

	assert.True(t, shared.IsNotFoundError(err))
}

func TestCountryRepository_UniqueConstraints(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, foundCountry(t, "user-1", "Arendelle")))

	err := repo.Create(ctx, foundCountry(t, "user-2", "Arendelle"))
	assert.ErrorIs(t, err, country.ErrNameTaken)

	err = repo.Create(ctx, foundCountry(t, "user-1", "Genovia"))
	assert.ErrorIs(t, err, country.ErrAlreadyHasCountry)
}

func TestCountryRepository_DuplicateCheckFailureIsReported(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCountryRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, foundCountry(t, "user-1", "Arendelle")))

	lookupErr := errors.New("connection reset")
	var failQueries atomic.Bool
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_query", func(tx *gorm.DB) {
		if failQueries.Load() {
			_ = tx.AddError(lookupErr)
		}
	}))
	failQueries.Store(true)

	err := repo.Create(ctx, foundCountry(t, "user-2", "Arendelle"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, country.ErrNameTaken)
	assert.NotErrorIs(t, err, country.ErrAlreadyHasCountry)
}

func TestCountryRepository_ExistsByName(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, foundCountry(t, "user-1", "Arendelle")))

	exists, err := repo.ExistsByName(ctx, "Arendelle")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Genovia")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCountryRepository_Delete(t *testing.T) {
	repo := persistence.NewGormCountryRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	c := foundCountry(t, "user-1", "Arendelle")
	require.NoError(t, repo.Create(ctx, c))

	err := repo.Delete(ctx, c.ID(), shared.MustNewUserID("user-2"))
	assert.True(t, shared.IsNotFoundError(err), "other users cannot delete")

	require.NoError(t, repo.Delete(ctx, c.ID(), shared.MustNewUserID("user-1")))

	_, err = repo.FindByUserID(ctx, shared.MustNewUserID("user-1"))
	assert.True(t, shared.IsNotFoundError(err))
}

func TestUserRepository_SetHasCountry(t *testing.T) {
	repo := persistence.NewGormUserRepository(helpers.NewTestDB(t))
	ctx := context.Background()
	user := shared.MustNewUserID("user-1")

	has, err := repo.HasCountry(ctx, user)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.SetHasCountry(ctx, user, true))
	has, err = repo.HasCountry(ctx, user)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, repo.SetHasCountry(ctx, user, false))
	has, err = repo.HasCountry(ctx, user)
	require.NoError(t, err)
	assert.False(t, has)
}

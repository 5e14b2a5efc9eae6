package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/nations-go/internal/adapters/persistence"
	"github.com/andrescamacho/nations-go/internal/application/country/commands"
	"github.com/andrescamacho/nations-go/internal/application/country/queries"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/application/setup"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
	"github.com/andrescamacho/nations-go/test/helpers"
)

// gameStart is the fixed T0 every scenario starts from
var gameStart = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type countryContext struct {
	clock    *shared.MockClock
	repo     *persistence.GormCountryRepository
	users    *persistence.GormUserRepository
	mediator mediator.Mediator

	lastResponse mediator.Response
	lastErr      error
}

func (c *countryContext) reset() {
	c.clock = nil
	c.repo = nil
	c.users = nil
	c.mediator = nil
	c.lastResponse = nil
	c.lastErr = nil
}

// Background steps

func (c *countryContext) aCleanGameDatabase() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	c.repo = persistence.NewGormCountryRepository(helpers.SharedTestDB)
	c.users = persistence.NewGormUserRepository(helpers.SharedTestDB)
	return nil
}

func (c *countryContext) theClockIsAtTheStartOfTheGame() error {
	if c.repo == nil {
		return fmt.Errorf("database not prepared: add 'a clean game database' first")
	}
	c.clock = shared.NewMockClock(gameStart)

	registry := setup.NewHandlerRegistry(c.repo, c.users, building.Default(), c.clock, nil)
	med, err := setup.NewCountryMediator(registry)
	if err != nil {
		return err
	}
	c.mediator = med
	return nil
}

// Given steps

func (c *countryContext) userOwnsACountryWith(user string, population, economy, environment int) error {
	founded := helpers.BuildCountry(helpers.CountryFixture{
		ID:         "country-" + user,
		UserID:     user,
		Resources:  country.Resources{Population: population, Economy: economy, Environment: environment},
		LastUpdate: c.clock.Now(),
	})
	return c.repo.Create(context.Background(), founded)
}

func (c *countryContext) theCountryHasBuilt(user string, count int, buildingType string) error {
	return c.rewrite(user, func(snapshot countrySnapshot) countrySnapshot {
		snapshot.buildings = append(snapshot.buildings, country.OwnedBuilding{
			Type:  building.Type(buildingType),
			Count: count,
		})
		return snapshot
	})
}

func (c *countryContext) theCountryHasAnOrderCompletingIn(user, buildingType string, minutes int) error {
	return c.rewrite(user, func(snapshot countrySnapshot) countrySnapshot {
		order := country.NewConstructionOrder(building.Type(buildingType), c.clock.Now(), time.Duration(minutes)*time.Minute)
		snapshot.queue = append(snapshot.queue, order)
		return snapshot
	})
}

func (c *countryContext) minutesPass(minutes int) error {
	c.clock.Advance(time.Duration(minutes) * time.Minute)
	return nil
}

// When steps

func (c *countryContext) send(request mediator.Request) {
	c.lastResponse, c.lastErr = c.mediator.Send(context.Background(), request)
}

func (c *countryContext) userViewsTheirCountry(user string) error {
	c.send(&queries.GetCountryQuery{UserID: user})
	return nil
}

func (c *countryContext) userChecksTheirBuildingStatus(user string) error {
	c.send(&queries.GetBuildingStatusQuery{UserID: user})
	return nil
}

func (c *countryContext) userRequestsTheirProductionRate(user string) error {
	c.send(&queries.GetProductionQuery{UserID: user})
	return nil
}

func (c *countryContext) userConstructs(user, buildingType string) error {
	c.send(&commands.ConstructBuildingCommand{UserID: user, BuildingType: buildingType})
	return nil
}

func (c *countryContext) userFounds(user, name, values string) error {
	c.send(&commands.CreateCountryCommand{
		UserID:     user,
		Name:       name,
		Government: string(country.GovernmentRepublic),
		Values:     strings.Split(values, ","),
		Flag: &commands.FlagInput{
			BackgroundColor: "#1d3557",
			Pattern:         "circle",
			PatternColor:    "#f1faee",
		},
	})
	return nil
}

func (c *countryContext) userDeletesTheirCountry(user string) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	c.send(&commands.DeleteCountryCommand{UserID: user, CountryID: stored.ID()})
	return nil
}

// Then steps

func (c *countryContext) theRequestSucceeds() error {
	if c.lastErr != nil {
		return fmt.Errorf("expected success, got error: %v", c.lastErr)
	}
	return nil
}

func (c *countryContext) theRequestIsRejectedWith(message string) error {
	if c.lastErr == nil {
		return fmt.Errorf("expected rejection %q, request succeeded", message)
	}

	var admission *country.AdmissionError
	var validation *shared.ValidationError
	switch {
	case errors.As(c.lastErr, &admission):
		if admission.Message() != message {
			return fmt.Errorf("expected %q, got admission rejection %q", message, admission.Message())
		}
	case errors.As(c.lastErr, &validation):
		if validation.Message != message {
			return fmt.Errorf("expected %q, got validation error %q", message, validation.Message)
		}
	default:
		return fmt.Errorf("expected rejection %q, got unexpected error: %v", message, c.lastErr)
	}
	return nil
}

func (c *countryContext) theCountryHasResources(user string, population, economy, environment int) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	want := country.Resources{Population: population, Economy: economy, Environment: environment}
	if got := stored.Resources(); got != want {
		return fmt.Errorf("expected resources %+v, got %+v", want, got)
	}
	return nil
}

func (c *countryContext) theEnvironmentIs(user string, environment int) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	if got := stored.Resources().Environment; got != environment {
		return fmt.Errorf("expected environment %d, got %d", environment, got)
	}
	return nil
}

func (c *countryContext) theCountryOwns(user string, count int, buildingType string) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	if got := stored.BuildingCount(building.Type(buildingType)); got != count {
		return fmt.Errorf("expected %d %s, got %d (buildings: %+v)", count, buildingType, got, stored.Buildings())
	}
	return nil
}

func (c *countryContext) theCountryHasBuildingEntries(user string, entries int) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	if got := len(stored.Buildings()); got != entries {
		return fmt.Errorf("expected %d building entries, got %d: %+v", entries, got, stored.Buildings())
	}
	return nil
}

func (c *countryContext) theConstructionQueueIsEmpty(user string) error {
	return c.theConstructionQueueHasOrders(user, 0)
}

func (c *countryContext) theConstructionQueueHasOrders(user string, orders int) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	if got := len(stored.ConstructionQueue()); got != orders {
		return fmt.Errorf("expected %d queued orders, got %d", orders, got)
	}
	return nil
}

func (c *countryContext) theLastResourceUpdateIs(user string, minutes int) error {
	stored, err := c.stored(user)
	if err != nil {
		return err
	}
	want := gameStart.Add(time.Duration(minutes) * time.Minute)
	if got := stored.LastResourceUpdate(); !got.Equal(want) {
		return fmt.Errorf("expected last resource update %s, got %s", want, got)
	}
	return nil
}

func (c *countryContext) theProductionRateIs(population, economy, environment int) error {
	if c.lastErr != nil {
		return fmt.Errorf("production query failed: %v", c.lastErr)
	}
	resp, ok := c.lastResponse.(*queries.GetProductionResponse)
	if !ok {
		return fmt.Errorf("expected production response, got %T", c.lastResponse)
	}
	want := country.Production{Population: population, Economy: economy, Environment: environment}
	if resp.Production != want {
		return fmt.Errorf("expected production %+v, got %+v", want, resp.Production)
	}
	return nil
}

func (c *countryContext) userIsMarkedAsHavingACountry(user string) error {
	return c.expectHasCountry(user, true)
}

func (c *countryContext) userIsNotMarkedAsHavingACountry(user string) error {
	return c.expectHasCountry(user, false)
}

func (c *countryContext) userHasNoCountry(user string) error {
	_, err := c.stored(user)
	if err == nil {
		return fmt.Errorf("expected no country for %s", user)
	}
	if !shared.IsNotFoundError(err) {
		return fmt.Errorf("expected not found, got %v", err)
	}
	return nil
}

// helpers

func (c *countryContext) stored(user string) (*country.Country, error) {
	return c.repo.FindByUserID(context.Background(), shared.MustNewUserID(user))
}

func (c *countryContext) expectHasCountry(user string, want bool) error {
	got, err := c.users.HasCountry(context.Background(), shared.MustNewUserID(user))
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected has-country %t for %s, got %t", want, user, got)
	}
	return nil
}

type countrySnapshot struct {
	buildings []country.OwnedBuilding
	queue     []country.ConstructionOrder
}

// rewrite replaces the stored buildings and queue of a country, leaving everything else as is
func (c *countryContext) rewrite(user string, edit func(countrySnapshot) countrySnapshot) error {
	current, err := c.stored(user)
	if err != nil {
		return err
	}
	next := edit(countrySnapshot{buildings: current.Buildings(), queue: current.ConstructionQueue()})

	updated := country.ReconstructCountry(
		current.ID(),
		current.UserID(),
		current.Name(),
		current.Government(),
		current.Values(),
		current.Flag(),
		current.Resources(),
		next.buildings,
		next.queue,
		current.LastResourceUpdate(),
		current.CreatedAt(),
	)
	return c.repo.Save(context.Background(), updated)
}

// InitializeCountryScenario registers the nation building steps
func InitializeCountryScenario(sc *godog.ScenarioContext) {
	c := &countryContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Background
	sc.Step(`^a clean game database$`, c.aCleanGameDatabase)
	sc.Step(`^the clock is at the start of the game$`, c.theClockIsAtTheStartOfTheGame)

	// Given
	sc.Step(`^user "([^"]*)" owns a country with population (-?\d+), economy (-?\d+) and environment (-?\d+)$`, c.userOwnsACountryWith)
	sc.Step(`^the country of "([^"]*)" has built (\d+) "([^"]*)"$`, c.theCountryHasBuilt)
	sc.Step(`^the country of "([^"]*)" has a "([^"]*)" order completing in (\d+) minutes$`, c.theCountryHasAnOrderCompletingIn)
	sc.Step(`^(\d+) minutes pass$`, c.minutesPass)

	// When
	sc.Step(`^user "([^"]*)" views their country$`, c.userViewsTheirCountry)
	sc.Step(`^user "([^"]*)" checks their building status$`, c.userChecksTheirBuildingStatus)
	sc.Step(`^user "([^"]*)" requests their production rate$`, c.userRequestsTheirProductionRate)
	sc.Step(`^user "([^"]*)" constructs a "([^"]*)"$`, c.userConstructs)
	sc.Step(`^user "([^"]*)" founds "([^"]*)" with values "([^"]*)"$`, c.userFounds)
	sc.Step(`^user "([^"]*)" deletes their country$`, c.userDeletesTheirCountry)

	// Then
	sc.Step(`^the request succeeds$`, c.theRequestSucceeds)
	sc.Step(`^the request is rejected with "([^"]*)"$`, c.theRequestIsRejectedWith)
	sc.Step(`^the country of "([^"]*)" has population (-?\d+), economy (-?\d+) and environment (-?\d+)$`, c.theCountryHasResources)
	sc.Step(`^the environment of "([^"]*)" is (-?\d+)$`, c.theEnvironmentIs)
	sc.Step(`^the country of "([^"]*)" owns (\d+) "([^"]*)"$`, c.theCountryOwns)
	sc.Step(`^the country of "([^"]*)" has (\d+) building entr(?:y|ies)$`, c.theCountryHasBuildingEntries)
	sc.Step(`^the construction queue of "([^"]*)" is empty$`, c.theConstructionQueueIsEmpty)
	sc.Step(`^the construction queue of "([^"]*)" has (\d+) orders?$`, c.theConstructionQueueHasOrders)
	sc.Step(`^the last resource update of "([^"]*)" is (\d+) minutes after the start$`, c.theLastResourceUpdateIs)
	sc.Step(`^the production rate is population (-?\d+), economy (-?\d+) and environment (-?\d+)$`, c.theProductionRateIs)
	sc.Step(`^user "([^"]*)" is marked as having a country$`, c.userIsMarkedAsHavingACountry)
	sc.Step(`^user "([^"]*)" is not marked as having a country$`, c.userIsNotMarkedAsHavingACountry)
	sc.Step(`^user "([^"]*)" has no country$`, c.userHasNoCountry)
}

package setup

import (
	"fmt"
	"reflect"

	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/country/commands"
	"github.com/andrescamacho/nations-go/internal/application/country/queries"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	countryRepo country.CountryRepository
	users       country.UserDirectory
	catalog     *building.Catalog
	clock       shared.Clock
	recorder    appCountry.GameRecorder
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	countryRepo country.CountryRepository,
	users country.UserDirectory,
	catalog *building.Catalog,
	clock shared.Clock,
	recorder appCountry.GameRecorder,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if catalog == nil {
		catalog = building.Default()
	}
	if recorder == nil {
		recorder = appCountry.NoopRecorder{}
	}

	return &HandlerRegistry{
		countryRepo: countryRepo,
		users:       users,
		catalog:     catalog,
		clock:       clock,
		recorder:    recorder,
	}
}

// RegisterCountryHandlers registers every country command and query handler.
//
// The production calculator, advancement engine and admission controller are
// built once here from the injected catalog and shared by all handlers.
func (r *HandlerRegistry) RegisterCountryHandlers(m mediator.Mediator) error {
	engine := country.NewAdvancementEngine(country.NewProductionCalculator(r.catalog))
	controller := country.NewAdmissionController(r.catalog, engine)
	reconciler := appCountry.NewReconciler(r.countryRepo, engine, r.clock, r.recorder)

	handlers := map[reflect.Type]mediator.RequestHandler{
		reflect.TypeOf(&commands.CreateCountryCommand{}):     commands.NewCreateCountryHandler(r.countryRepo, r.users, r.clock),
		reflect.TypeOf(&commands.ConstructBuildingCommand{}): commands.NewConstructBuildingHandler(reconciler, controller),
		reflect.TypeOf(&commands.UpdateFlagCommand{}):        commands.NewUpdateFlagHandler(r.countryRepo, reconciler),
		reflect.TypeOf(&commands.DeleteCountryCommand{}):     commands.NewDeleteCountryHandler(r.countryRepo, r.users),
		reflect.TypeOf(&queries.GetCountryQuery{}):           queries.NewGetCountryHandler(reconciler),
		reflect.TypeOf(&queries.GetProductionQuery{}):        queries.NewGetProductionHandler(reconciler),
		reflect.TypeOf(&queries.GetBuildingStatusQuery{}):    queries.NewGetBuildingStatusHandler(reconciler),
		reflect.TypeOf(&queries.ListBuildingTypesQuery{}):    queries.NewListBuildingTypesHandler(r.catalog),
	}

	for requestType, handler := range handlers {
		if err := m.Register(requestType, handler); err != nil {
			return fmt.Errorf("failed to register %s: %w", requestType, err)
		}
	}
	return nil
}

// NewCountryMediator builds a mediator with every country handler registered
// and the given middlewares applied in order.
func NewCountryMediator(registry *HandlerRegistry, middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, mw := range middlewares {
		m.Use(mw)
	}
	if err := registry.RegisterCountryHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}

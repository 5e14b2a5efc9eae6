package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
	"github.com/andrescamacho/nations-go/internal/adapters/metrics"
	"github.com/andrescamacho/nations-go/internal/adapters/persistence"
	"github.com/andrescamacho/nations-go/internal/adapters/rest"
	appCountry "github.com/andrescamacho/nations-go/internal/application/country"
	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
	"github.com/andrescamacho/nations-go/internal/application/setup"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
	"github.com/andrescamacho/nations-go/internal/infrastructure/database"
	"github.com/andrescamacho/nations-go/internal/infrastructure/pidfile"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API and the admin daemon",
		Long: `Start the game server.

The JSON API listens on server.address. The admin daemon listens on
daemon.socket_path and serves the 'nations country' and 'nations catalog'
commands. Both stop gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := logging.NewLogger(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cfg.Logging.Output,
			})

			pf := pidfile.New(cfg.Daemon.PIDFile)
			if err := pf.Acquire(); err != nil {
				return fmt.Errorf("failed to acquire PID file lock: %w", err)
			}
			defer func() {
				if err := pf.Release(); err != nil {
					logger.Warn("failed to release PID file", "error", err)
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("connecting to database", "type", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	catalog, err := loadCatalog(cfg.Game)
	if err != nil {
		return err
	}
	logger.Info("building catalog loaded", "types", len(catalog.Types()))

	var (
		recorder    appCountry.GameRecorder
		middlewares []mediator.Middleware
		restOpts    = []rest.Option{rest.WithLogger(logger)}
	)
	if cfg.Metrics.Enabled {
		commandMetrics := metrics.NewCommandMetricsCollector()
		gameMetrics := metrics.NewGameMetricsCollector()
		httpMetrics := metrics.NewHTTPMetricsCollector()

		reg, err := metrics.NewRegistry(commandMetrics, gameMetrics, httpMetrics)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}

		recorder = gameMetrics
		middlewares = append(middlewares, metrics.PrometheusMiddleware(commandMetrics))
		restOpts = append(restOpts,
			rest.WithHTTPMetrics(httpMetrics),
			rest.WithMetricsEndpoint(cfg.Metrics.Path, metrics.Handler(reg)))
	}

	registry := setup.NewHandlerRegistry(
		persistence.NewGormCountryRepository(db),
		persistence.NewGormUserRepository(db),
		catalog,
		shared.NewRealClock(),
		recorder,
	)
	med, err := setup.NewCountryMediator(registry, middlewares...)
	if err != nil {
		return fmt.Errorf("failed to build mediator: %w", err)
	}

	daemonServer, err := grpcAdapter.NewDaemonServer(med, cfg.Daemon.SocketPath, logger)
	if err != nil {
		return err
	}
	apiServer := rest.NewServer(cfg.Server, med, restOpts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return apiServer.ListenAndServe(gctx) })
	g.Go(func() error { return daemonServer.Serve(gctx) })

	err = g.Wait()
	logger.Info("server stopped")
	return err
}

// loadCatalog returns the configured catalog file, or the embedded default
func loadCatalog(cfg config.GameConfig) (*building.Catalog, error) {
	if cfg.CatalogPath == "" {
		return building.Default(), nil
	}
	catalog, err := building.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load building catalog: %w", err)
	}
	return catalog, nil
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
	"github.com/andrescamacho/nations-go/internal/application/setup"
	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
	"github.com/andrescamacho/nations-go/test/helpers"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// startTestDaemon serves a mock-backed daemon and points HOME at a scratch directory
func startTestDaemon(t *testing.T, repo *helpers.MockCountryRepository) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NATIONS_SOCKET", "")

	dir, err := os.MkdirTemp("", "nations")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	socket := filepath.Join(dir, "d.sock")

	registry := setup.NewHandlerRegistry(repo, helpers.NewMockUserDirectory(), building.Default(), shared.NewMockClock(t0), nil)
	med, err := setup.NewCountryMediator(registry)
	require.NoError(t, err)

	server, err := grpcAdapter.NewDaemonServer(med, socket, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = server.Serve(ctx) }()
	t.Cleanup(cancel)

	return socket
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seededRepo() *helpers.MockCountryRepository {
	repo := helpers.NewMockCountryRepository()
	repo.AddCountry(helpers.BuildCountry(helpers.CountryFixture{
		UserID:     "user-1",
		Name:       "Avalon",
		LastUpdate: t0,
		Buildings:  []country.OwnedBuilding{{Type: "HOUSE", Count: 1}},
	}))
	return repo
}

func TestCountryShow_PrintsTree(t *testing.T) {
	socket := startTestDaemon(t, seededRepo())

	out, err := runCLI(t, "--socket", socket, "country", "show", "--user", "user-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Avalon (Democracy)")
	assert.Contains(t, out, "economy:     10000")
	assert.Contains(t, out, "└── HOUSE x1")
	assert.Contains(t, out, "construction queue (empty)")
}

func TestCountryProduction_UsesDefaultUser(t *testing.T) {
	socket := startTestDaemon(t, seededRepo())

	_, err := runCLI(t, "config", "set-user", "user-1")
	require.NoError(t, err)

	out, err := runCLI(t, "--socket", socket, "country", "production")

	require.NoError(t, err)
	assert.Contains(t, out, "population:  +110")
	assert.Contains(t, out, "economy:     +105")
	assert.Contains(t, out, "environment: -2")
}

func TestCountryConstruct_ReportsOrderAndRejection(t *testing.T) {
	socket := startTestDaemon(t, seededRepo())

	out, err := runCLI(t, "--socket", socket, "country", "construct", "park", "--user", "user-1")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ PARK queued")
	assert.Contains(t, out, "economy left: 8000")

	_, err = runCLI(t, "--socket", socket, "country", "construct", "SOLAR_PLANT", "--user", "user-1")
	require.Error(t, err)
	assert.Equal(t, "construction rejected: Insufficient population", err.Error())
}

func TestCountryShow_RequiresUser(t *testing.T) {
	socket := startTestDaemon(t, seededRepo())

	_, err := runCLI(t, "--socket", socket, "country", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user specified")
}

func TestCatalogList_PrintsEveryType(t *testing.T) {
	socket := startTestDaemon(t, helpers.NewMockCountryRepository())

	out, err := runCLI(t, "--socket", socket, "catalog", "list")

	require.NoError(t, err)
	for _, name := range []string{"FACTORY", "HOUSE", "OFFICE", "PARK", "SOLAR_PLANT"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "+25")
}

func TestConfigSetAndClearUser(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCLI(t, "config", "set-user", "user-9")
	require.NoError(t, err)

	store, err := config.NewPreferencesStore()
	require.NoError(t, err)
	prefs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "user-9", prefs.DefaultUserID)

	_, err = runCLI(t, "config", "clear-user")
	require.NoError(t, err)
	prefs, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, prefs.DefaultUserID)
}

func TestCountryFormatter_QueueEstimates(t *testing.T) {
	f := NewCountryFormatter(func() time.Time { return t0 })

	out := f.FormatQueue("", []grpcAdapter.OrderMessage{
		{BuildingType: "HOUSE", CompletesAt: t0.Add(90 * time.Minute)},
		{BuildingType: "PARK", CompletesAt: t0.Add(-time.Minute)},
	})

	assert.Contains(t, out, "├── HOUSE completes 2026-03-01T13:30:00Z (in 1h30m0s)")
	assert.Contains(t, out, "└── PARK completes 2026-03-01T11:59:00Z (ready)")
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "postgres://game:xxxxx@db:5432/nations", maskPassword("postgres://game:secret@db:5432/nations"))
	assert.Equal(t, "postgres://db/nations", maskPassword("postgres://db/nations"))
}

func TestLoadCatalog_DefaultsToEmbedded(t *testing.T) {
	catalog, err := loadCatalog(config.GameConfig{})

	require.NoError(t, err)
	assert.Len(t, catalog.Types(), 5)
}

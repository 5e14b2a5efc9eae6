package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
	"github.com/andrescamacho/nations-go/internal/infrastructure/database"
)

func TestNewTestConnection_MigratesTables(t *testing.T) {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.True(t, db.Migrator().HasTable("countries"))
	assert.True(t, db.Migrator().HasTable("users"))
}

func TestNewConnection_RejectsUnknownType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mongodb"})

	assert.ErrorContains(t, err, "unsupported database type")
}

package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capilia/internal/config"
	"capilia/internal/database"
	"capilia/internal/database/migration"
	"capilia/internal/logger"
)

func TestRunSeedsEveryTable(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(config.DatabaseConfig{Path: database.MemoryPath})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migration.EnsureMigrated(ctx, db, database.SQLite, logger.Discard(), "memory"))
	require.NoError(t, Run(ctx, db, database.SQLite))

	counts := map[string]int{
		"companies":              4,
		"certification_types":    5,
		"process_types":          5,
		"equipment_types":        5,
		"analytics_types":        5,
		"service_types":          5,
		"company_certifications": 9,
		"company_processes":      11,
		"company_equipment":      12,
		"company_analytics":      12,
		"company_services":       12,
		"company_products":       10,
	}
	for table, want := range counts {
		var got int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, table)
	}

	var off int
	require.NoError(t, db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM company_certifications WHERE has_cert = FALSE)
		     + (SELECT COUNT(*) FROM company_processes WHERE available = FALSE)`).Scan(&off))
	assert.Equal(t, 2, off)

	var missing int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM companies WHERE lat IS NULL OR lon IS NULL`).Scan(&missing))
	assert.Equal(t, 1, missing)
}

func TestRunTwiceViolatesUniqueness(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(config.DatabaseConfig{Path: database.MemoryPath})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migration.EnsureMigrated(ctx, db, database.SQLite, logger.Discard(), "memory"))
	require.NoError(t, Run(ctx, db, database.SQLite))
	assert.Error(t, Run(ctx, db, database.SQLite))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&n))
	assert.Equal(t, 4, n, "failed seed must roll back")
}

func TestNeeded(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(config.DatabaseConfig{Path: database.MemoryPath})
	require.NoError(t, err)
	defer db.Close()

	_, err = Needed(ctx, db)
	assert.Error(t, err, "schema missing")

	require.NoError(t, migration.EnsureMigrated(ctx, db, database.SQLite, logger.Discard(), "memory"))
	needed, err := Needed(ctx, db)
	require.NoError(t, err)
	assert.True(t, needed)

	require.NoError(t, Run(ctx, db, database.SQLite))
	needed, err = Needed(ctx, db)
	require.NoError(t, err)
	assert.False(t, needed)
}

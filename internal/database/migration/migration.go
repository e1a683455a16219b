package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"capilia/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

// dialectTypes fills the few column types that differ between SQLite and PostgreSQL.
type dialectTypes struct {
	ID        string
	Timestamp string
}

func typesFor(d database.Dialect) dialectTypes {
	if d == database.Postgres {
		return dialectTypes{
			ID:        "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY",
			Timestamp: "TIMESTAMPTZ",
		}
	}
	return dialectTypes{
		ID:        "INTEGER PRIMARY KEY AUTOINCREMENT",
		Timestamp: "DATETIME",
	}
}

// lookupTables share the (id, code, name) shape.
var lookupTables = []string{
	"certification_types",
	"process_types",
	"analytics_types",
	"service_types",
}

func steps(d database.Dialect) []migrationStep {
	t := typesFor(d)
	out := []migrationStep{
		{
			Name: "create_table_companies",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS companies (
  id                 %[1]s,
  name               TEXT NOT NULL UNIQUE,
  location           TEXT,
  lat                DOUBLE PRECISION,
  lon                DOUBLE PRECISION,
  state              TEXT,
  city               TEXT,
  country            TEXT,
  company_type       TEXT,
  turnover           NUMERIC(18, 2),
  no_of_facilities   INTEGER,
  manpower           INTEGER,
  contract_manpower  INTEGER,
  phd_count          INTEGER,
  msc_count          INTEGER,
  chemical_engineers INTEGER,
  no_of_products     INTEGER,
  under_dev_products INTEGER,
  fei                VARCHAR(100),
  duns               VARCHAR(100),
  customer_audit     BOOLEAN NOT NULL DEFAULT FALSE,
  ssr                VARCHAR(100),
  glr                VARCHAR(100),
  ssr_capacity       NUMERIC(18, 2),
  glr_capacity       NUMERIC(18, 2),
  created_at         %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at         %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP
);`, t.ID, t.Timestamp),
		},
		{Name: "create_index_companies_city", SQL: `CREATE INDEX IF NOT EXISTS idx_companies_city ON companies (city);`},
		{Name: "create_index_companies_country", SQL: `CREATE INDEX IF NOT EXISTS idx_companies_country ON companies (country);`},
		{Name: "create_index_companies_state", SQL: `CREATE INDEX IF NOT EXISTS idx_companies_state ON companies (state);`},
	}

	for _, table := range lookupTables {
		out = append(out, migrationStep{
			Name: "create_table_" + table,
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  id   %s,
  code VARCHAR(80) NOT NULL UNIQUE,
  name TEXT NOT NULL
);`, table, t.ID),
		})
	}

	out = append(out,
		migrationStep{
			Name: "create_table_equipment_types",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS equipment_types (
  id      %s,
  code    VARCHAR(80) NOT NULL UNIQUE,
  name    TEXT NOT NULL,
  comment TEXT
);`, t.ID),
		},
		migrationStep{
			Name: "create_table_company_certifications",
			SQL: `CREATE TABLE IF NOT EXISTS company_certifications (
  company_id            BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  certification_type_id BIGINT NOT NULL REFERENCES certification_types (id) ON DELETE CASCADE,
  has_cert              BOOLEAN NOT NULL DEFAULT TRUE,
  cert_number           VARCHAR(200),
  cert_issued_by        TEXT,
  cert_valid_from       DATE,
  cert_valid_to         DATE,
  notes                 TEXT,
  PRIMARY KEY (company_id, certification_type_id)
);`,
		},
		migrationStep{
			Name: "create_table_company_processes",
			SQL: `CREATE TABLE IF NOT EXISTS company_processes (
  company_id       BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  process_type_id  BIGINT NOT NULL REFERENCES process_types (id) ON DELETE CASCADE,
  available        BOOLEAN NOT NULL DEFAULT TRUE,
  capability_level VARCHAR(50),
  max_scale_kg     NUMERIC(14, 2),
  notes            TEXT,
  PRIMARY KEY (company_id, process_type_id)
);`,
		},
		migrationStep{
			Name: "create_table_company_equipment",
			SQL: `CREATE TABLE IF NOT EXISTS company_equipment (
  company_id        BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  equipment_type_id BIGINT NOT NULL REFERENCES equipment_types (id) ON DELETE CASCADE,
  count             INTEGER NOT NULL DEFAULT 0,
  capacity          NUMERIC(18, 2),
  notes             TEXT,
  PRIMARY KEY (company_id, equipment_type_id)
);`,
		},
		migrationStep{
			Name: "create_table_company_analytics",
			SQL: `CREATE TABLE IF NOT EXISTS company_analytics (
  company_id        BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  analytics_type_id BIGINT NOT NULL REFERENCES analytics_types (id) ON DELETE CASCADE,
  available         BOOLEAN NOT NULL DEFAULT TRUE,
  instrument_count  INTEGER NOT NULL DEFAULT 0,
  model_info        TEXT,
  notes             TEXT,
  PRIMARY KEY (company_id, analytics_type_id)
);`,
		},
		migrationStep{
			Name: "create_table_company_services",
			SQL: `CREATE TABLE IF NOT EXISTS company_services (
  company_id      BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  service_type_id BIGINT NOT NULL REFERENCES service_types (id) ON DELETE CASCADE,
  offered         BOOLEAN NOT NULL DEFAULT TRUE,
  details         TEXT,
  PRIMARY KEY (company_id, service_type_id)
);`,
		},
		migrationStep{
			Name: "create_table_company_products",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS company_products (
  id             %s,
  company_id     BIGINT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
  product_name   TEXT,
  product_type   TEXT,
  stage          VARCHAR(50),
  price_per_unit NUMERIC(18, 4),
  units          TEXT,
  notes          TEXT,
  CONSTRAINT uq_company_product_name_per_company UNIQUE (company_id, product_name)
);`, t.ID),
		},
		migrationStep{Name: "create_index_company_cert_company", SQL: `CREATE INDEX IF NOT EXISTS idx_company_cert_company ON company_certifications (company_id);`},
		migrationStep{Name: "create_index_company_proc_company", SQL: `CREATE INDEX IF NOT EXISTS idx_company_proc_company ON company_processes (company_id);`},
		migrationStep{Name: "create_index_company_products_company_id", SQL: `CREATE INDEX IF NOT EXISTS idx_company_products_company_id ON company_products (company_id);`},
		migrationStep{
			Name: "create_table_rfqs",
			SQL: `CREATE TABLE IF NOT EXISTS rfqs (
  id                TEXT PRIMARY KEY,
  product_id        TEXT NOT NULL,
  product_name      TEXT NOT NULL,
  manufacturer      TEXT NOT NULL,
  quantity          DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
  unit              VARCHAR(10) NOT NULL,
  delivery_location TEXT NOT NULL,
  notes             TEXT NOT NULL DEFAULT '',
  archive_key       TEXT NOT NULL DEFAULT '',
  created_at_ms     BIGINT NOT NULL
);`,
		},
		migrationStep{Name: "create_index_rfqs_product_id", SQL: `CREATE INDEX IF NOT EXISTS idx_rfqs_product_id ON rfqs (product_id);`},
	)
	return out
}

// dropOrder lists tables children first so foreign keys never block a drop.
var dropOrder = []string{
	"rfqs",
	"company_products",
	"company_services",
	"company_analytics",
	"company_equipment",
	"company_processes",
	"company_certifications",
	"equipment_types",
	"service_types",
	"analytics_types",
	"process_types",
	"certification_types",
	"companies",
}

// sentinelTable is the last table steps creates.
const sentinelTable = "rfqs"

func sentinelQuery(d database.Dialect) string {
	if d == database.Postgres {
		return "SELECT to_regclass('public." + sentinelTable + "') IS NOT NULL"
	}
	return "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = '" + sentinelTable + "'"
}

// EnsureMigrated checks if the 'rfqs' table exists and, if it doesn't, runs
// every step in a single transaction.
func EnsureMigrated(ctx context.Context, db *sql.DB, d database.Dialect, log *logrus.Logger, dbHost string) error {
	start := time.Now()
	entry := log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
		"dialect":   string(d),
	})

	entry.WithField("status", "starting").Info("db_migration_check")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery(d)).Scan(&exists); err != nil {
		entry.WithFields(logrus.Fields{
			"status":      "error",
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Error("db_migration_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		entry.WithFields(logrus.Fields{
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("db_migration_skip")
		return nil
	}

	entry.WithField("status", "in_progress").Info("db_migration_start")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		entry.WithFields(logrus.Fields{
			"status":      "error",
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Error("db_migration_failed")
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps(d) {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			entry.WithFields(logrus.Fields{
				"status":           "error",
				"migration_step":   step.Name,
				"error":            err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).Error("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		entry.WithFields(logrus.Fields{
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("db_migration_step")
	}

	if err := tx.Commit(); err != nil {
		entry.WithFields(logrus.Fields{
			"status":      "error",
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Error("db_migration_failed")
		return fmt.Errorf("commit migration: %w", err)
	}

	entry.WithFields(logrus.Fields{
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("db_migration_success")

	return nil
}

// DropAll removes every table created by EnsureMigrated.
func DropAll(ctx context.Context, db *sql.DB, log *logrus.Logger) error {
	for _, table := range dropOrder {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	log.WithFields(logrus.Fields{"component": "database", "tables": len(dropOrder)}).Info("db_tables_dropped")
	return nil
}

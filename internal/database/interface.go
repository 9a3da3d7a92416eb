// Package database probes live connectivity to the databases a Drupal site
// would use. Results are informational and do not affect the driver score.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"github.com/CosmoTheDev/cmsprobe/models"
	"go.uber.org/zap"
)

// probeTimeout bounds each connectivity probe.
const probeTimeout = 5 * time.Second

// DB is the minimal connection surface the probes need.
// Implementations exist for SQLite and MySQL.
type DB interface {
	// Ping verifies the database connection is alive.
	Ping(ctx context.Context) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)

	// Close releases the database connection.
	Close() error

	// Driver returns the backend name: "sqlite" or "mysql".
	Driver() string
}

// New returns a DB implementation for driver. dsn is a MySQL DSN or an
// SQLite path.
func New(driver, dsn string) (DB, error) {
	switch driver {
	case "mysql":
		return NewMySQL(dsn)
	case "sqlite", "sqlite3":
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q (supported: sqlite, mysql)", driver)
	}
}

// Probe connects to every configured database and reports the outcome.
// Unconfigured drivers are skipped; failures never abort the others.
func Probe(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) []models.Connection {
	logger = logging.OrNop(logger)

	targets := []struct {
		driver string
		dsn    string
		label  string
	}{
		{"mysql", cfg.MySQLDSN, RedactDSN(cfg.MySQLDSN)},
		{"sqlite", cfg.SQLitePath, cfg.SQLitePath},
	}

	var out []models.Connection
	for _, t := range targets {
		if t.dsn == "" {
			continue
		}
		conn := probeOne(ctx, t.driver, t.dsn)
		conn.Target = t.label
		if conn.OK {
			logger.Debug("Database reachable", zap.String("driver", t.driver), zap.String("version", conn.Version))
		} else {
			logger.Warn("Database unreachable", zap.String("driver", t.driver), zap.String("error", conn.Error))
		}
		out = append(out, conn)
	}
	return out
}

func probeOne(ctx context.Context, driver, dsn string) models.Connection {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	conn := models.Connection{Driver: driver}
	db, err := New(driver, dsn)
	if err != nil {
		conn.Error = err.Error()
		return conn
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		conn.Error = err.Error()
		return conn
	}
	v, err := db.ServerVersion(ctx)
	if err != nil {
		conn.Error = err.Error()
		return conn
	}
	conn.OK = true
	conn.Version = v
	return conn
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/infrastructure/config"
)

// NewDriver opens the ent SQL driver used by the repositories. Postgres goes
// through the pgx pool; sqlite uses a single serialized connection.
func NewDriver(cfg *config.Config, logger logrus.FieldLogger) (*entsql.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	switch driver {
	case "postgres":
		pool, closePool, err := NewConnection(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return entsql.OpenDB(dialect.Postgres, db), func() {
			_ = db.Close()
			closePool()
		}, nil
	case "sqlite3":
		dsn, err := cfg.DatabaseURL()
		if err != nil {
			return nil, nil, fmt.Errorf("determine database dsn: %w", err)
		}
		return OpenSQLite(dsn)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewMigrationDriver opens a plain database/sql driver for schema changes.
func NewMigrationDriver(cfg *config.Config) (*entsql.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	switch driver {
	case "postgres":
		rawDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres db: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rawDB.PingContext(ctx); err != nil {
			_ = rawDB.Close()
			return nil, nil, fmt.Errorf("ping postgres db: %w", err)
		}
		drv := entsql.OpenDB(dialect.Postgres, rawDB)
		return drv, func() { _ = drv.Close() }, nil
	case "sqlite3":
		return OpenSQLite(dsn)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// OpenSQLite opens a sqlite database with foreign keys enforced.
func OpenSQLite(dsn string) (*entsql.Driver, func(), error) {
	rawDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		_ = rawDB.Close()
		return nil, nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = rawDB.Close()
		return nil, nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, rawDB)
	return drv, func() { _ = drv.Close() }, nil
}

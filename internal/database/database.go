// Package database opens the gorm connection for the configured driver and
// applies the embedded schema migrations.
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"panelboard/internal/config"
	"panelboard/internal/logging"
	"panelboard/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database described by cfg and tunes the pool.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.GormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// sqlite allows one writer; a single long-lived connection also keeps
		// in-memory databases alive.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

// Migrate applies all pending migrations for the configured driver. Running
// it against an up-to-date schema is a no-op.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	src, err := iofs.New(migrations.FS, cfg.DBDriver)
	if err != nil {
		return fmt.Errorf("loading %s migrations: %w", cfg.DBDriver, err)
	}

	var m *migrate.Migrate
	switch cfg.DBDriver {
	case config.DriverSQLite:
		// Shares gorm's handle, which an in-memory database depends on. The
		// sqlite3 driver's Close would close that handle, so it is never closed.
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		target, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("preparing migration driver: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", src, cfg.DBDriver, target)
		if err != nil {
			return fmt.Errorf("creating migrator: %w", err)
		}
	case config.DriverPostgres:
		m, err = migrate.NewWithSourceInstance("iofs", src, cfg.MigrationURL())
		if err != nil {
			return fmt.Errorf("creating migrator: %w", err)
		}
		defer m.Close()
	default:
		return fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

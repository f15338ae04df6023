// Package database provides a GORM opener for SQLite with the uuid SQL
// functions available, and column types for storing UUIDs.
package database

import (
	"fmt"
	"time"

	sqlitedialect "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/weiawesome/sqlite-uuid/pkg/sqliteext"
)

// Config holds database configuration.
type Config struct {
	// Path is the SQLite database file, or ":memory:".
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// Open creates a GORM connection on the modernc.org/sqlite driver with
// the uuid function set registered, so uuid(), uuid7_blob() and friends
// are usable in queries and DEFAULT clauses.
func Open(cfg *Config) (*gorm.DB, error) {
	if err := sqliteext.Register(); err != nil {
		return nil, fmt.Errorf("failed to register uuid functions: %w", err)
	}

	// The dialector defaults to the cgo sqlite3 driver; point it at the
	// pure-Go driver the functions are registered into.
	dialector := sqlitedialect.Dialector{
		DriverName: sqliteext.DriverName,
		DSN:        cfg.Path,
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Path == ":memory:" {
		// Each pooled connection would otherwise see its own empty
		// in-memory database.
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	return db, nil
}

package main

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/weiawesome/sqlite-uuid/internal/config"
	pkglog "github.com/weiawesome/sqlite-uuid/pkg/log"
	"github.com/weiawesome/sqlite-uuid/pkg/sqliteext"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "sqlite-uuid",
	})
	logger := pkglog.L()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("demo failed")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	// Install the uuid SQL functions into the driver.
	if err := sqliteext.Register(); err != nil {
		return fmt.Errorf("failed to register uuid functions: %w", err)
	}
	logger.Info().Msg("uuid functions registered")

	db, err := sql.Open(sqliteext.DriverName, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	defer db.Close()
	if cfg.Database.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Generate a batch of each kind through SQL.
	for i := 0; i < cfg.Demo.Count; i++ {
		var random, ordered string
		if err := db.QueryRow("SELECT uuid()").Scan(&random); err != nil {
			return fmt.Errorf("uuid() query failed: %w", err)
		}
		if err := db.QueryRow("SELECT uuid7()").Scan(&ordered); err != nil {
			return fmt.Errorf("uuid7() query failed: %w", err)
		}
		logger.Info().Str("random", random).Str("ordered", ordered).Msg("generated")
	}

	// Normalize a round trip: text -> blob -> canonical text.
	input := "12345678-1234-1234-1234-123456789ABC"
	var normalized string
	if err := db.QueryRow("SELECT uuid_str(uuid_blob(?))", input).Scan(&normalized); err != nil {
		return fmt.Errorf("round trip failed: %w", err)
	}
	logger.Info().Str("input", input).Str("normalized", normalized).Msg("round trip")

	logger.Info().Int(pkglog.FieldCount, cfg.Demo.Count).Msg("done")
	return nil
}

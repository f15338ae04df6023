// Package config holds the typed configuration for the sqlite-uuid
// command.
package config

import (
	pkgconfig "github.com/weiawesome/sqlite-uuid/pkg/config"
	pkglog "github.com/weiawesome/sqlite-uuid/pkg/log"
)

type Config struct {
	Database DatabaseConfig
	Demo     DemoConfig
	Log      pkglog.Config
}

type DatabaseConfig struct {
	Path string
}

type DemoConfig struct {
	Count int
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("demo.count", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("database.path", "SQLITE_UUID_DB_PATH")
	v.BindEnv("demo.count", "SQLITE_UUID_DEMO_COUNT")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

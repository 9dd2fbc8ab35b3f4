// Package config handles configuration for the Mini-Reddit server:
// defaults, then an optional JSON file, then command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/repomanager"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - EndpointAddrGRPC: bind address of the gRPC health service.
//   - StorageDriver: "sqlite" or "postgres".
//   - DatabaseDSN: SQLite file/DSN or PostgreSQL DSN (pgx).
//   - VoteMode: "net" (downvote lowers upvotes) or "tally" (downvote raises downvotes).
//   - LogLevel: debug, info, warn or error.
//   - HealthCheckInterval: how often the database is pinged for the health service.
//   - SeedOnStart: insert seed data into empty tables at startup.
type Config struct {
	EndpointAddrHTTP    string
	EndpointAddrGRPC    string
	StorageDriver       string
	DatabaseDSN         string
	VoteMode            models.VoteMode
	LogLevel            string
	HealthCheckInterval time.Duration
	SeedOnStart         bool
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file and the original net vote model.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = repomanager.DriverSQLite
	c.DatabaseDSN = "minireddit.db"
	c.VoteMode = models.VoteModeNet
	c.LogLevel = "info"
	c.HealthCheckInterval = 10 * time.Second
	c.SeedOnStart = true
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if !c.VoteMode.Valid() {
		return fmt.Errorf("unknown vote mode %q", c.VoteMode)
	}
	if c.StorageDriver != repomanager.DriverSQLite && c.StorageDriver != repomanager.DriverPostgres {
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive, got %s", c.HealthCheckInterval)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the optional JSON file and the
// process flags, in that order of precedence (later wins).
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

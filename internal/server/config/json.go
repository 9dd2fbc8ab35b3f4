package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/trollterminator/Miniprojekt/internal/flagx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave the
// current value alone.
type JsonConfig struct {
	EndpointAddrHTTP    string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC    string          `json:"endpoint_addr_grpc"`
	StorageDriver       string          `json:"storage_driver"`
	DatabaseDSN         string          `json:"database_dsn"`
	VoteMode            string          `json:"vote_mode"`
	LogLevel            string          `json:"log_level"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval"`
	SeedOnStart         *bool           `json:"seed_on_start"`
}

// parseJson overlays the file named by -c/-config (or $CONFIG) onto config.
// No file configured is not an error.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	if c.VoteMode != "" {
		config.VoteMode = models.VoteMode(c.VoteMode)
	}
	if c.HealthCheckInterval != nil {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.SeedOnStart != nil {
		config.SeedOnStart = *c.SeedOnStart
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

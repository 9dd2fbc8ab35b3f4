package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/trollterminator/Miniprojekt/internal/flagx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   REST bind address (e.g. ":8080")
//	-g string   gRPC health bind address (e.g. ":50051")
//	-s string   storage driver: sqlite | postgres
//	-d string   database DSN
//	-m string   vote mode: net | tally
//	-l string   log level
//	-i int      health check interval, seconds
//	-seed       seed empty tables on start (use -seed=false to disable)
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-s", "-d", "-m", "-l", "-i"}, "-seed")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port of the REST API")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of the gRPC health service")
	fs.StringVar(&config.StorageDriver, "s", config.StorageDriver, "storage driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	voteMode := fs.String("m", string(config.VoteMode), "vote mode (net|tally)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	interval := fs.Int("i", int(config.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.BoolVar(&config.SeedOnStart, "seed", config.SeedOnStart, "seed empty tables on start")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.VoteMode = models.VoteMode(*voteMode)
	config.HealthCheckInterval = time.Duration(*interval) * time.Second
	return nil
}

package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/unity/internal/flagx"
)

var ownFlags = []string{"-a", "-h", "-backend", "-d", "-s", "-w", "-sweep", "-log", "-debug"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      gRPC bind address (e.g., ":50051")
//	-h string      HTTP bind address (e.g., ":8080")
//	-backend name  postgres | supabase
//	-d string      PostgreSQL DSN
//	-s string      JWT HMAC secret key
//	-w int         available-now window, minutes
//	-sweep string  cron spec of the availability sweeper
//	-log name      slog | zap
//	-debug         debug logging
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.Backend, "backend", config.Backend, "persistence backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	window := fs.Int("w", int(config.AvailableNowWindow.Minutes()), "available now window (in minutes)")
	fs.StringVar(&config.AvailabilitySweepSchedule, "sweep", config.AvailabilitySweepSchedule, "availability sweep cron spec")
	fs.StringVar(&config.LogBackend, "log", config.LogBackend, "log backend")
	fs.BoolVar(&config.LogDebug, "debug", config.LogDebug, "debug logging")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "w" {
			config.AvailableNowWindow = time.Duration(*window) * time.Minute
		}
	})
	return nil
}

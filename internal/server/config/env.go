package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv loads a .env file when present (existing variables win) and then
// reads the UNITY_* variables plus the conventional SUPABASE_* and
// DATABASE_URL names.
func parseEnv(c *Config) error {
	_ = godotenv.Load()

	setString(&c.Backend, os.Getenv("UNITY_BACKEND"))
	setString(&c.EndpointAddrGRPC, os.Getenv("UNITY_GRPC_ADDR"))
	setString(&c.EndpointAddrHTTP, os.Getenv("UNITY_HTTP_ADDR"))
	setString(&c.DatabaseDSN, os.Getenv("DATABASE_URL"))
	setString(&c.SupabaseURL, os.Getenv("SUPABASE_URL"))
	setString(&c.SupabaseKey, os.Getenv("SUPABASE_SERVICE_KEY"))
	setString(&c.SecretKey, os.Getenv("UNITY_JWT_SECRET"))
	setString(&c.AvailabilitySweepSchedule, os.Getenv("UNITY_AVAILABILITY_SWEEP"))
	setString(&c.LogBackend, os.Getenv("UNITY_LOG_BACKEND"))
	setString(&c.S3Bucket, os.Getenv("UNITY_S3_BUCKET"))
	setString(&c.S3BaseEndpoint, os.Getenv("UNITY_S3_ENDPOINT"))

	if v := os.Getenv("UNITY_AVAILABLE_NOW_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("UNITY_AVAILABLE_NOW_WINDOW: %w", err)
		}
		c.AvailableNowWindow = d
	}
	if v := os.Getenv("UNITY_LOG_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("UNITY_LOG_DEBUG: %w", err)
		}
		c.LogDebug = b
	}

	return nil
}

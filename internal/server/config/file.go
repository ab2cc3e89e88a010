package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/unity/internal/flagx"
	"github.com/dmitrijs2005/unity/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations accept
// strings such as "4h" as well as integer nanoseconds. Zero values leave the
// current setting untouched.
type FileConfig struct {
	EndpointAddrGRPC          string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP          string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	Backend                   string         `json:"backend" yaml:"backend"`
	DatabaseDSN               string         `json:"database_dsn" yaml:"database_dsn"`
	SupabaseURL               string         `json:"supabase_url" yaml:"supabase_url"`
	SupabaseKey               string         `json:"supabase_key" yaml:"supabase_key"`
	SecretKey                 string         `json:"secret_key" yaml:"secret_key"`
	AvailableNowWindow        timex.Duration `json:"available_now_window" yaml:"available_now_window"`
	AvailabilitySweepSchedule string         `json:"availability_sweep_schedule" yaml:"availability_sweep_schedule"`
	RequestTimeout            timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogBackend                string         `json:"log_backend" yaml:"log_backend"`
	LogDebug                  bool           `json:"log_debug" yaml:"log_debug"`
	S3RootUser                string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword            string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                  string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                  string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint            string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3PresignTTL              timex.Duration `json:"s3_presign_ttl" yaml:"s3_presign_ttl"`
}

// parseFile overlays the file named by -c/-config. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&c.Backend, fc.Backend)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SupabaseURL, fc.SupabaseURL)
	setString(&c.SupabaseKey, fc.SupabaseKey)
	setString(&c.SecretKey, fc.SecretKey)
	setString(&c.AvailabilitySweepSchedule, fc.AvailabilitySweepSchedule)
	setString(&c.LogBackend, fc.LogBackend)
	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)

	if fc.AvailableNowWindow.Duration > 0 {
		c.AvailableNowWindow = fc.AvailableNowWindow.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		c.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.S3PresignTTL.Duration > 0 {
		c.S3PresignTTL = fc.S3PresignTTL.Duration
	}
	if fc.LogDebug {
		c.LogDebug = true
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

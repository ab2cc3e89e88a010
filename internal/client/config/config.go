package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/unity/internal/timex"
)

// Config holds runtime settings for the listings client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RequestTimeout: deadline applied to every RPC.
//   - RefreshInterval: how often the browse screen reloads listings.
//   - Token: bearer access token; when empty it is read from TokenFile.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	RefreshInterval    time.Duration
	Token              string
	TokenFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.RefreshInterval = 30 * time.Second
	if home, err := os.UserHomeDir(); err == nil {
		c.TokenFile = filepath.Join(home, ".unity", "token")
	}
}

// JsonConfig is the on-disk shape of Config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	RefreshInterval    timex.Duration `json:"refresh_interval"`
	TokenFile          string         `json:"token_file"`
}

// Load applies defaults, then the JSON file at path (if non-empty), then the
// environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := cfg.overlayJSON(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("UNITY_SERVER_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("UNITY_TOKEN"); v != "" {
		cfg.Token = v
	}

	return cfg, nil
}

func (c *Config) overlayJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != "" {
		c.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		c.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshInterval.Duration > 0 {
		c.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.TokenFile != "" {
		c.TokenFile = jc.TokenFile
	}
	return nil
}

// ResolveToken returns Token, falling back to the trimmed contents of
// TokenFile. A missing file yields "".
func (c *Config) ResolveToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}
	if c.TokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.TokenFile)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken writes token to TokenFile with owner-only permissions.
func (c *Config) SaveToken(token string) error {
	if c.TokenFile == "" {
		return fmt.Errorf("no token file configured")
	}
	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token+"\n"), 0o600)
}

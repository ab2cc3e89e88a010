// Package config loads runtime configuration for the listings client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with --config.
//  3. Environment: UNITY_SERVER_ADDR and UNITY_TOKEN.
//  4. Command-line flags, bound by the cobra root command onto the same Config.
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "refresh_interval": "30s",
//	  "token_file": "~/.unity/token"
//	}
package config

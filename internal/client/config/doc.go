// Package config loads runtime configuration for the stackpick CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c/-config or the
//     STACKPICK_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the catalog gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local cache DSN
//	-o string   download directory
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "cache_dsn": "stackpick.db",
//	  "download_dir": "templates",
//	  "log_level": "warn"
//	}
package config

package config

import "time"

// DefaultOnlineCheckInterval is used when no positive interval is configured.
const DefaultOnlineCheckInterval = 3 * time.Second

// Config holds runtime settings for the stackpick CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the catalog gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - CacheDSN: SQLite DSN of the local catalog cache.
//   - DownloadDir: where template archives are saved.
//   - LogLevel: slog level name for diagnostic output.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	CacheDSN            string
	DownloadDir         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = DefaultOnlineCheckInterval
	c.CacheDSN = "stackpick.db"
	c.DownloadDir = "templates"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stackpick/internal/flagx"
	"github.com/dmitrijs2005/stackpick/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations go
// through timex.Duration so both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC    string         `json:"endpoint_addr_grpc"`
	EndpointAddrMetrics string         `json:"endpoint_addr_metrics"`
	DatabaseDSN         string         `json:"database_dsn"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	PresignExpiry       timex.Duration `json:"presign_expiry"`
	LogLevel            string         `json:"log_level"`
	SeedFile            string         `json:"seed_file"`
}

// parseJson overlays values from the JSON file named by -c/-config (or the
// STACKPICK_CONFIG environment variable) onto config. Keys missing from the
// file leave the current value untouched. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrMetrics, c.EndpointAddrMetrics)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SeedFile, c.SeedFile)

	if c.PresignExpiry.Duration > 0 {
		config.PresignExpiry = c.PresignExpiry.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

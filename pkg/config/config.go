// Package config loads this service's environment-driven settings the way
// the teacher's cmd/server/main.go calls out to its own config package:
// viper bound against environment variables with sane defaults, no config
// file required.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server's own runtime knobs. It deliberately has no
// database/cache fields — persistent storage is an explicit Non-goal (see
// DESIGN.md's dropped-dependency ledger).
type Config struct {
	ServiceName string
	Port        string
	LogLevel    string
	Environment string

	// DefaultBatchSize is used when an /api/v1/optimize request omits N.
	DefaultBatchSize int
}

// Load reads configuration from the environment using the DFS_ prefix,
// falling back to defaults for anything unset.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("dfs")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("service_name", "lineup-optimizer")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "development")
	v.SetDefault("default_batch_size", 1)

	return &Config{
		ServiceName:      v.GetString("service_name"),
		Port:             v.GetString("port"),
		LogLevel:         v.GetString("log_level"),
		Environment:      v.GetString("environment"),
		DefaultBatchSize: v.GetInt("default_batch_size"),
	}
}

// IsDevelopment reports whether the service is running outside production.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

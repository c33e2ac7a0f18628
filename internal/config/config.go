// Package config loads service configuration from a TOML file and
// PF_STATS_ environment overrides
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
	"github.com/KirkDiggler/pathfinder-stats/internal/redis"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PF_STATS_"

// Catalog sources
const (
	CatalogSourceRedis = "redis"
	CatalogSourceYAML  = "yaml"
)

// Config is the complete service configuration
type Config struct {
	Server  ServerConfig  `toml:"server" envPrefix:"SERVER_"`
	Redis   RedisConfig   `toml:"redis" envPrefix:"REDIS_"`
	Catalog CatalogConfig `toml:"catalog" envPrefix:"CATALOG_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `toml:"port" env:"PORT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	Reflection      bool          `toml:"reflection" env:"REFLECTION"`
}

// RedisConfig configures the redis connection shared by the stores
type RedisConfig struct {
	Mode        string        `toml:"mode" env:"MODE"`
	Addrs       []string      `toml:"addrs" env:"ADDRS" envSeparator:","`
	MasterName  string        `toml:"master_name" env:"MASTER_NAME"`
	PoolSize    int           `toml:"pool_size" env:"POOL_SIZE"`
	MaxRetries  int           `toml:"max_retries" env:"MAX_RETRIES"`
	UseTLS      bool          `toml:"use_tls" env:"USE_TLS"`
	PingTimeout time.Duration `toml:"ping_timeout" env:"PING_TIMEOUT"`
}

// CatalogConfig selects where reference data is read from
type CatalogConfig struct {
	Source string `toml:"source" env:"SOURCE"`
	// Path is the YAML catalog, required when Source is yaml
	Path string `toml:"path" env:"PATH"`
}

// LoggingConfig configures the slog handler
type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "parse config %s", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or overrides are given
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
			Reflection:      true,
		},
		Redis: RedisConfig{
			Mode:        redis.ModeSingle,
			Addrs:       []string{"localhost:6379"},
			PoolSize:    10,
			MaxRetries:  3,
			PingTimeout: 5 * time.Second,
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceRedis,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.InvalidField("server.shutdown_timeout", "must be positive")
	}

	errors.ValidateEnum("redis.mode", c.Redis.Mode,
		[]string{redis.ModeSingle, redis.ModeCluster, redis.ModeSentinel}, vb)
	if len(c.Redis.Addrs) == 0 {
		vb.RequiredField("redis.addrs")
	}
	if c.Redis.Mode == redis.ModeSentinel && c.Redis.MasterName == "" {
		vb.RequiredField("redis.master_name")
	}

	errors.ValidateEnum("catalog.source", c.Catalog.Source,
		[]string{CatalogSourceRedis, CatalogSourceYAML}, vb)
	if c.Catalog.Source == CatalogSourceYAML && c.Catalog.Path == "" {
		vb.RequiredField("catalog.path")
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		vb.InvalidField("logging.level", err.Error())
	}
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"text", "json"}, vb)

	return vb.Build()
}

// RedisTarget returns the connection target for redis.Open
func (c *RedisConfig) RedisTarget() redis.Target {
	return redis.Target{
		Mode:       c.Mode,
		Addrs:      c.Addrs,
		MasterName: c.MasterName,
	}
}

// RedisOptions returns the client options for redis.Open
func (c *RedisConfig) RedisOptions() *redis.Options {
	return &redis.Options{
		PoolSize:   c.PoolSize,
		MaxRetries: c.MaxRetries,
		UseTLS:     c.UseTLS,
	}
}

// NewLogger builds the slog logger described by the logging section
func (c *LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

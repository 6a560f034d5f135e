// Package config resolves the runtime configuration of namereg.
//
// Values are layered: built-in defaults, then the TOML config file, then
// NAMEREG_* environment variables. Command-line flags are applied on top by
// the CLI.
package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config file keys in dot notation.
const (
	KeyServerAddr     = "server.addr"
	KeyStorageDriver  = "storage.driver"
	KeyStorageDSN     = "storage.dsn"
	KeyStorageDataDir = "storage.data_dir"
	KeyLogVerbose     = "log.verbose"
	KeyRateLimitRPS   = "ratelimit.rps"
	KeyRateLimitBurst = "ratelimit.burst"
)

// Keys lists every config file key in display order.
var Keys = []string{
	KeyServerAddr,
	KeyStorageDriver,
	KeyStorageDSN,
	KeyStorageDataDir,
	KeyLogVerbose,
	KeyRateLimitRPS,
	KeyRateLimitBurst,
}

// Defaults.
const (
	DefaultServerAddr     = ":8080"
	DefaultStorageDriver  = DriverSQLite
	DefaultRateLimitBurst = 10
)

// Config is the resolved runtime configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `env:"NAMEREG_SERVER_ADDR"`
}

// StorageConfig selects the NameStore backend.
type StorageConfig struct {
	Driver string `env:"NAMEREG_STORAGE_DRIVER"`
	// DSN is the connection string for postgres and mysql.
	DSN string `env:"NAMEREG_STORAGE_DSN"`
	// DataDir holds names.db for the sqlite driver. Empty means ~/.namereg/data.
	DataDir string `env:"NAMEREG_STORAGE_DATA_DIR"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Verbose bool `env:"NAMEREG_LOG_VERBOSE"`
}

// RateLimitConfig bounds requests per remote host. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `env:"NAMEREG_RATELIMIT_RPS"`
	Burst int     `env:"NAMEREG_RATELIMIT_BURST"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:    ServerConfig{Addr: DefaultServerAddr},
		Storage:   StorageConfig{Driver: DefaultStorageDriver},
		RateLimit: RateLimitConfig{Burst: DefaultRateLimitBurst},
	}
}

// Load builds a Config from the defaults, the given store (may be nil) and the
// environment, then validates it.
func Load(store driven.ConfigStore) (Config, error) {
	cfg := Default()
	if store != nil {
		ApplyStore(&cfg, store)
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyStore overrides cfg with every key present in store.
func ApplyStore(cfg *Config, store driven.ConfigStore) {
	if v := store.GetString(KeyServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := store.GetString(KeyStorageDriver); v != "" {
		cfg.Storage.Driver = v
	}
	if v := store.GetString(KeyStorageDSN); v != "" {
		cfg.Storage.DSN = v
	}
	if v := store.GetString(KeyStorageDataDir); v != "" {
		cfg.Storage.DataDir = v
	}
	if _, ok := store.Get(KeyLogVerbose); ok {
		cfg.Log.Verbose = store.GetBool(KeyLogVerbose)
	}
	if v, ok := store.Get(KeyRateLimitRPS); ok {
		if rps, ok := toFloat(v); ok {
			cfg.RateLimit.RPS = rps
		}
	}
	if _, ok := store.Get(KeyRateLimitBurst); ok {
		cfg.RateLimit.Burst = store.GetInt(KeyRateLimitBurst)
	}
}

// ParseEnv overrides target with any NAMEREG_* variables that are set.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the driver and its required settings.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres, DriverMySQL:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: storage.dsn is required for driver %q", domain.ErrInvalidInput, c.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", domain.ErrInvalidInput, c.Storage.Driver)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("%w: ratelimit.burst must be at least 1", domain.ErrInvalidInput)
	}
	return nil
}

// toFloat accepts TOML integers and floats.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// ParseValue converts raw into the type stored under key. Unknown keys and
// values of the wrong type fail with domain.ErrInvalidInput.
func ParseValue(key, raw string) (any, error) {
	switch key {
	case KeyServerAddr, KeyStorageDSN, KeyStorageDataDir:
		return raw, nil
	case KeyStorageDriver:
		switch raw {
		case DriverSQLite, DriverMemory, DriverPostgres, DriverMySQL:
			return raw, nil
		}
		return nil, fmt.Errorf("%w: unknown storage driver %q", domain.ErrInvalidInput, raw)
	case KeyLogVerbose:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case KeyRateLimitRPS:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		return f, nil
	case KeyRateLimitBurst:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
}

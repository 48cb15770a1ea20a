// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

// Package config loads identity service configuration from defaults, an
// optional YAML file, command-line flags and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/store"
)

// Defaults.
const (
	DefaultLogFormat     = "json"
	DefaultLogLevel      = "info"
	DefaultMetricsAddr   = "127.0.0.1:9100"
	DefaultMaxConns      = 10
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 100 * time.Millisecond
)

// Config is the resolved service configuration.
type Config struct {
	LogFormat   string         `koanf:"log_format"`
	LogLevel    string         `koanf:"log_level"`
	MetricsAddr string         `koanf:"metrics_addr"`
	Database    DatabaseConfig `koanf:"database"`
	Token       TokenConfig    `koanf:"token"`
	Lockout     LockoutConfig  `koanf:"lockout"`
	Retry       RetryConfig    `koanf:"retry"`

	// Secrets are read from the environment only.
	Secrets Secrets `koanf:"-"`
}

// DatabaseConfig tunes the connection pool.
type DatabaseConfig struct {
	MaxConns        int32         `koanf:"max_conns"`
	MinConns        int32         `koanf:"min_conns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
}

// TokenConfig controls token issuance.
type TokenConfig struct {
	Issuer     string        `koanf:"issuer"`
	Audience   string        `koanf:"audience"`
	AccessTTL  time.Duration `koanf:"access_ttl"`
	RefreshTTL time.Duration `koanf:"refresh_ttl"`
}

// LockoutConfig controls automatic throttling after failed logins.
type LockoutConfig struct {
	Threshold int           `koanf:"threshold"`
	Duration  time.Duration `koanf:"duration"`
}

// RetryConfig controls retries of transient storage failures.
type RetryConfig struct {
	Attempts  uint64        `koanf:"attempts"`
	BaseDelay time.Duration `koanf:"base_delay"`
}

// Secrets holds values that must never come from a config file.
type Secrets struct {
	JWTSecret   string `env:"IDENTITY_JWT_SECRET"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-format":             "log_format",
	"log-level":              "log_level",
	"metrics-addr":           "metrics_addr",
	"db-max-conns":           "database.max_conns",
	"token-issuer":           "token.issuer",
	"token-audience":         "token.audience",
	"access-token-ttl":       "token.access_ttl",
	"refresh-token-ttl":      "token.refresh_ttl",
	"lockout-threshold":      "lockout.threshold",
	"lockout-duration":       "lockout.duration",
	"storage-retry-attempts": "retry.attempts",
}

// RegisterFlags adds the configuration flags to fs. Flag defaults are the
// configuration defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-format", DefaultLogFormat, "log format (json or text)")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("metrics-addr", DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	fs.Int32("db-max-conns", DefaultMaxConns, "maximum database connections")
	fs.String("token-issuer", identity.DefaultIssuer, "access token issuer")
	fs.String("token-audience", identity.DefaultAudience, "access token audience")
	fs.Duration("access-token-ttl", identity.DefaultAccessTokenTTL, "access token lifetime")
	fs.Duration("refresh-token-ttl", identity.DefaultRefreshTokenTTL, "refresh token lifetime")
	fs.Int("lockout-threshold", identity.DefaultLockoutThreshold, "failed logins before throttling")
	fs.Duration("lockout-duration", identity.DefaultLockoutDuration, "throttle lock duration")
	fs.Uint64("storage-retry-attempts", DefaultRetryAttempts, "retries for transient storage failures")
}

// Load resolves configuration. Later sources win: flag defaults, the YAML
// file at path (if not empty), flags set on the command line, then the
// environment for secrets.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	return load(path, fs, env.Options{})
}

// LoadWithEnvironment is Load with an explicit environment instead of the
// process environment.
func LoadWithEnvironment(path string, fs *pflag.FlagSet, environ map[string]string) (*Config, error) {
	return load(path, fs, env.Options{Environment: environ})
}

func load(path string, fs *pflag.FlagSet, opts env.Options) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, configError("CONFIG_FILE_INVALID", err, "path", path)
		}
	}

	if fs != nil {
		provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, configError("CONFIG_FLAGS_INVALID", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, configError("CONFIG_DECODE_FAILED", err)
	}

	if err := env.ParseWithOptions(&cfg.Secrets, opts); err != nil {
		return nil, configError("CONFIG_ENV_INVALID", err)
	}

	return cfg, nil
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		LogFormat:   DefaultLogFormat,
		LogLevel:    DefaultLogLevel,
		MetricsAddr: DefaultMetricsAddr,
		Database:    DatabaseConfig{MaxConns: DefaultMaxConns},
		Token: TokenConfig{
			Issuer:     identity.DefaultIssuer,
			Audience:   identity.DefaultAudience,
			AccessTTL:  identity.DefaultAccessTokenTTL,
			RefreshTTL: identity.DefaultRefreshTokenTTL,
		},
		Lockout: LockoutConfig{
			Threshold: identity.DefaultLockoutThreshold,
			Duration:  identity.DefaultLockoutDuration,
		},
		Retry: RetryConfig{Attempts: DefaultRetryAttempts, BaseDelay: DefaultRetryDelay},
	}
}

// Validate checks settings needed by every command. Secrets are checked
// separately because not every command needs them.
func (c *Config) Validate() error {
	err := validation.Errors{
		"log_format":         validation.Validate(c.LogFormat, validation.Required, validation.In("json", "text")),
		"log_level":          validation.Validate(c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		"token.issuer":       validation.Validate(c.Token.Issuer, validation.Required),
		"token.audience":     validation.Validate(c.Token.Audience, validation.Required),
		"token.access_ttl":   validation.Validate(c.Token.AccessTTL, validation.By(positiveDuration)),
		"token.refresh_ttl":  validation.Validate(c.Token.RefreshTTL, validation.By(positiveDuration)),
		"lockout.threshold":  validation.Validate(c.Lockout.Threshold, validation.By(positiveInt)),
		"lockout.duration":   validation.Validate(c.Lockout.Duration, validation.By(positiveDuration)),
		"database.max_conns": validation.Validate(int(c.Database.MaxConns), validation.By(positiveInt)),
		"retry.base_delay":   validation.Validate(c.Retry.BaseDelay, validation.By(positiveDuration)),
	}.Filter()
	if err != nil {
		return configError("CONFIG_INVALID", err)
	}
	if c.Token.RefreshTTL <= c.Token.AccessTTL {
		return configError("CONFIG_INVALID", errors.New("token.refresh_ttl must exceed token.access_ttl"),
			"access_ttl", c.Token.AccessTTL.String(),
			"refresh_ttl", c.Token.RefreshTTL.String())
	}
	return nil
}

// RequireDatabase checks that a database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.Secrets.DatabaseURL == "" {
		return configError("CONFIG_INVALID", errors.New("DATABASE_URL environment variable is required"))
	}
	return nil
}

// RequireSigningSecret checks that a signing secret of sufficient length is
// configured.
func (c *Config) RequireSigningSecret() error {
	if len(c.Secrets.JWTSecret) < identity.MinSigningKeyLength {
		return configError("CONFIG_INVALID",
			fmt.Errorf("IDENTITY_JWT_SECRET must be at least %d bytes", identity.MinSigningKeyLength))
	}
	return nil
}

// SignerConfig returns the token signer settings.
func (c *Config) SignerConfig() identity.SignerConfig {
	return identity.SignerConfig{
		Secret:   []byte(c.Secrets.JWTSecret),
		Issuer:   c.Token.Issuer,
		Audience: c.Token.Audience,
		TTL:      c.Token.AccessTTL,
	}
}

// LockoutPolicy returns the throttle policy.
func (c *Config) LockoutPolicy() identity.LockoutPolicy {
	return identity.LockoutPolicy{Threshold: c.Lockout.Threshold, Duration: c.Lockout.Duration}
}

// PoolConfig returns the connection pool settings.
func (c *Config) PoolConfig() store.PoolConfig {
	return store.PoolConfig{
		MaxConns:        c.Database.MaxConns,
		MinConns:        c.Database.MinConns,
		MaxConnLifetime: c.Database.MaxConnLifetime,
	}
}

func positiveDuration(value interface{}) error {
	d, _ := value.(time.Duration)
	if d <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func positiveInt(value interface{}) error {
	n, _ := value.(int)
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func configError(code string, err error, kv ...any) error {
	return oops.Code(code).With(kv...).Wrap(fmt.Errorf("%w: %w", identity.ErrConfiguration, err))
}

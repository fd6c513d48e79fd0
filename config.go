package fixit

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines a public type used by fixit-go APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Provider ProviderConfig
	Token    TokenConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
PROVIDER CONFIG
====================================
*/

// ProviderConfig defines a public type used by fixit-go APIs.
//
// ProviderConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ProviderConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig defines a public type used by fixit-go APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenConfig struct {
	// RenewAhead is how long before the recorded expiry a token is treated
	// as stale and renewed. Zero selects the default of one minute.
	RenewAhead time.Duration
}

// AuditConfig defines a public type used by fixit-go APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by fixit-go APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Timeout: 15 * time.Second,
		},
		Token: TokenConfig{
			RenewAhead: time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
FILE LOADING
====================================
*/

// fileConfig is the YAML shape of a config file. Durations are strings in
// time.ParseDuration syntax; booleans and integers are pointers so absent
// fields can be told apart from explicit zero values.
type fileConfig struct {
	Provider struct {
		BaseURL   string `yaml:"base_url"`
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"provider"`
	Token struct {
		RenewAhead string `yaml:"renew_ahead"`
	} `yaml:"token"`
	Audit struct {
		Enabled    *bool `yaml:"enabled"`
		BufferSize *int  `yaml:"buffer_size"`
		DropIfFull *bool `yaml:"drop_if_full"`
	} `yaml:"audit"`
	Metrics struct {
		Enabled                 *bool `yaml:"enabled"`
		EnableLatencyHistograms *bool `yaml:"enable_latency_histograms"`
	} `yaml:"metrics"`
}

// LoadConfigFile reads a YAML config file and overlays it on the defaults.
// Fields absent from the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := defaultConfig()

	if file.Provider.BaseURL != "" {
		cfg.Provider.BaseURL = file.Provider.BaseURL
	}
	if file.Provider.UserAgent != "" {
		cfg.Provider.UserAgent = file.Provider.UserAgent
	}
	if file.Provider.Timeout != "" {
		d, err := time.ParseDuration(file.Provider.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse provider timeout: %w", err)
		}
		cfg.Provider.Timeout = d
	}
	if file.Token.RenewAhead != "" {
		d, err := time.ParseDuration(file.Token.RenewAhead)
		if err != nil {
			return Config{}, fmt.Errorf("parse token renew_ahead: %w", err)
		}
		cfg.Token.RenewAhead = d
	}
	if file.Audit.Enabled != nil {
		cfg.Audit.Enabled = *file.Audit.Enabled
	}
	if file.Audit.BufferSize != nil {
		cfg.Audit.BufferSize = *file.Audit.BufferSize
	}
	if file.Audit.DropIfFull != nil {
		cfg.Audit.DropIfFull = *file.Audit.DropIfFull
	}
	if file.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *file.Metrics.Enabled
	}
	if file.Metrics.EnableLatencyHistograms != nil {
		cfg.Metrics.EnableLatencyHistograms = *file.Metrics.EnableLatencyHistograms
	}

	return cfg, nil
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Provider
	if c.Provider.BaseURL != "" {
		u, err := url.Parse(c.Provider.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("Provider BaseURL must be an absolute URL")
		}
	}
	if c.Provider.Timeout < 0 {
		return errors.New("Provider Timeout must be >= 0")
	}

	// Token
	if c.Token.RenewAhead < 0 {
		return errors.New("Token RenewAhead must be >= 0")
	}
	if c.Token.RenewAhead > 24*time.Hour {
		return errors.New("Token RenewAhead must be <= 24h")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}

	return nil
}

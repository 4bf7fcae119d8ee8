// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Configuration for the vringcheck tool: defaults, VRING_* environment
// variables and an optional config file, layered by viper.

package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/momentics/vring/ring"
)

// EnvPrefix prefixes environment overrides, e.g. VRING_RING_CAPACITY.
const EnvPrefix = "VRING"

// Config is the complete vringcheck configuration.
type Config struct {
	Ring    RingConfig    `mapstructure:"ring"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RingConfig describes the buffer the tool builds.
type RingConfig struct {
	// Capacity is the requested element capacity before page rounding.
	Capacity uint64 `mapstructure:"capacity"`
	// Backend is one of "auto", "mirrored", "flat".
	Backend string `mapstructure:"backend"`
	// Name labels the shared memory object.
	Name string `mapstructure:"name"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Ring: RingConfig{
			Capacity: 4096,
			Backend:  ring.BackendAuto.String(),
			Name:     "vring",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("ring.capacity", defaults.Ring.Capacity)
	v.SetDefault("ring.backend", defaults.Ring.Backend)
	v.SetDefault("ring.name", defaults.Ring.Name)
	v.SetDefault("logging.level", defaults.Logging.Level)
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (when non-empty) into v and decodes the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Ring.Capacity == 0 {
		result = multierror.Append(result, errors.New("ring.capacity must be greater than zero"))
	}
	if _, err := ring.ParseBackend(c.Ring.Backend); err != nil {
		result = multierror.Append(result, fmt.Errorf("ring.backend: %w", err))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	return result.ErrorOrNil()
}

// RingOptions translates the ring section into constructor options.
func (c *Config) RingOptions() ([]ring.Option, error) {
	b, err := ring.ParseBackend(c.Ring.Backend)
	if err != nil {
		return nil, err
	}
	return []ring.Option{ring.WithBackend(b), ring.WithName(c.Ring.Name)}, nil
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vango-dev/regctx/internal/errors"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "REGCTX"

// Sort orders accepted by Demo.Sort.
const (
	SortOrder = "order"
	SortTitle = "title"
	SortNone  = "none"
)

// Config is the complete CLI configuration.
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Demo    DemoConfig    `mapstructure:"demo"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// SessionConfig configures the component session.
type SessionConfig struct {
	MaxFlushPasses int `mapstructure:"max_flush_passes"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// DemoConfig configures the table of contents demo.
type DemoConfig struct {
	// Sections are the section titles, in document order.
	Sections []string `mapstructure:"sections"`

	// Sort is the TOC order: "order" (document order), "title" or "none".
	Sort string `mapstructure:"sort"`

	// Toggle lists sections hidden one at a time after the first render.
	Toggle []string `mapstructure:"toggle"`

	// Pretty indents the HTML output.
	Pretty bool `mapstructure:"pretty"`
}

// MetricsConfig configures the Prometheus dump.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// TracingConfig configures OpenTelemetry span annotation.
type TracingConfig struct {
	TracerName string        `mapstructure:"tracer_name"`
	SlowFlush  time.Duration `mapstructure:"slow_flush"`
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("session.max_flush_passes", 100)
	v.SetDefault("log.level", "warn")
	v.SetDefault("demo.sections", []string{"Introduction", "Installation", "Usage", "API"})
	v.SetDefault("demo.sort", SortOrder)
	v.SetDefault("demo.toggle", []string{})
	v.SetDefault("demo.pretty", true)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "vango")
	v.SetDefault("tracing.tracer_name", "vango")
	v.SetDefault("tracing.slow_flush", 100*time.Millisecond)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds each flag to the key of the same name in keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("config: unknown flag %q", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", flag, err)
		}
	}
	return nil
}

// Load reads the optional config file at path and decodes the result.
// Errors carry code R002 when the file cannot be read and R001 otherwise.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.New("R002").Wrap(fmt.Errorf("config: read %s: %w", path, err))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.New("R001").Wrap(fmt.Errorf("config: unmarshal: %w", err))
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.FromError(err, "R001")
	}
	return c, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.Demo.Sort {
	case SortOrder, SortTitle, SortNone:
	default:
		return fmt.Errorf("config: demo.sort must be one of %s, %s, %s; got %q",
			SortOrder, SortTitle, SortNone, c.Demo.Sort)
	}
	if c.Session.MaxFlushPasses <= 0 {
		return fmt.Errorf("config: session.max_flush_passes must be positive, got %d",
			c.Session.MaxFlushPasses)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}

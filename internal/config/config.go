package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/datemanip/internal/datemanip"
	"github.com/username/datemanip/internal/intl"
	"github.com/username/datemanip/pkg/dateutil"
)

// EnvPrefix prefixes every environment override (DATEMANIP_TIMEZONE, DATEMANIP_INTL_LOCALE, ...)
const EnvPrefix = "DATEMANIP"

// Config represents application configuration
type Config struct {
	Timezone     string             `mapstructure:"timezone"`
	NativeFormat string             `mapstructure:"native_format"`
	Intl         IntlConfig         `mapstructure:"intl"`
	Messages     datemanip.Messages `mapstructure:"messages"`
	Log          LogConfig          `mapstructure:"log"`
}

// IntlConfig represents locale-aware formatting configuration
type IntlConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	intl.Settings `mapstructure:",squash"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty: console only
	Level string `mapstructure:"level"` // debug, info, warn, error
}

var messageKeys = []string{
	"messages.invalid_date_range",
	"messages.invalid_timezone",
	"messages.invalid_date_modification",
	"messages.invalid_date_modification_quantity",
	"messages.invalid_date_modification_unit",
	"messages.invalid_date_to_modify",
	"messages.invalid_format_settings",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "UTC")
	v.SetDefault("native_format", "Y-m-d H:i:s")

	v.SetDefault("intl.enabled", false)
	v.SetDefault("intl.locale", string(intl.DefaultLocale))
	v.SetDefault("intl.date_style", string(intl.StyleLong))
	v.SetDefault("intl.time_style", string(intl.StyleShort))
	v.SetDefault("intl.timezone", "")
	v.SetDefault("intl.calendar", intl.CalendarGregorian)
	v.SetDefault("intl.pattern", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file and environment.
// With an empty path the usual locations are searched and a missing file
// leaves the defaults in place; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datemanip")
		v.AddConfigPath("/etc/datemanip")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// message keys have no defaults, so AutomaticEnv alone would not see them
	for _, key := range messageKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := dateutil.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	if c.Intl.Enabled {
		if _, err := intl.NewFormatter(c.Intl.Settings); err != nil {
			return fmt.Errorf("intl: %w", err)
		}
	} else if c.NativeFormat == "" {
		return fmt.Errorf("native_format is required when intl.enabled is false")
	}

	if !c.Messages.IsZero() {
		if err := c.Messages.Validate(); err != nil {
			return fmt.Errorf("messages: %w", err)
		}
	}

	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// MessageTable returns the configured messages, or the defaults when none are set
func (c *Config) MessageTable() datemanip.Messages {
	if c.Messages.IsZero() {
		return datemanip.DefaultMessages()
	}
	return c.Messages
}

// Format returns the format selected by the configuration
func (c *Config) Format() datemanip.Format {
	if c.Intl.Enabled {
		return datemanip.IntlFormat(c.Intl.Settings)
	}
	return datemanip.NativeFormat(c.NativeFormat)
}

// LogLevel parses log.level; empty means info
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Log.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"ledgerdesk/internal/domain"
)

// Config wraps a viper instance so callers depend on lookups, not on
// how the values were loaded.
type Config struct {
	v *viper.Viper
}

func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Load reads ledgerdesk.yaml from path (or the working directory when
// path is empty) with LEDGERDESK_* environment overrides. A missing
// config file is fine; the defaults carry the business rules.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("ledgerdesk")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("LEDGERDESK")
	// Nested keys map to underscored env names, e.g.
	// limits.name_max_length -> LEDGERDESK_LIMITS_NAME_MAX_LENGTH.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := domain.DefaultLimits()
	v.SetDefault("limits.name_max_length", defaults.NameMaxLength)
	v.SetDefault("limits.rate_max", defaults.RateMax.String())
	v.SetDefault("console.prompt", "ledgerdesk> ")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return New(v), nil
}

// Limits returns the validation bounds, with any configured overrides
// applied on top of the domain defaults.
func (c *Config) Limits() (domain.Limits, error) {
	limits := domain.DefaultLimits()

	if c.v.IsSet("limits.name_max_length") {
		limits.NameMaxLength = c.v.GetInt("limits.name_max_length")
	}
	if c.v.IsSet("limits.rate_max") {
		rateMax, err := decimal.NewFromString(c.v.GetString("limits.rate_max"))
		if err != nil {
			return limits, fmt.Errorf("invalid limits.rate_max: %w", err)
		}
		limits.RateMax = rateMax
	}

	return limits, nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

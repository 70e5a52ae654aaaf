package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	limits, err := cfg.Limits()
	require.NoError(t, err)
	assert.Equal(t, 100, limits.NameMaxLength)
	assert.True(t, decimal.NewFromInt(10000).Equal(limits.RateMax))
	assert.Equal(t, "ledgerdesk> ", cfg.GetString("console.prompt"))
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("LEDGERDESK_LIMITS_NAME_MAX_LENGTH", "50")
	t.Setenv("LEDGERDESK_LIMITS_RATE_MAX", "2500")
	t.Setenv("LEDGERDESK_CONSOLE_PROMPT", "$ ")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	limits, err := cfg.Limits()
	require.NoError(t, err)
	assert.Equal(t, 50, limits.NameMaxLength)
	assert.True(t, decimal.NewFromInt(2500).Equal(limits.RateMax))
	assert.Equal(t, "$ ", cfg.GetString("console.prompt"))
}

func TestLimitsOverride(t *testing.T) {
	v := viper.New()
	v.Set("limits.name_max_length", 64)
	v.Set("limits.rate_max", "500.50")
	cfg := New(v)

	limits, err := cfg.Limits()
	require.NoError(t, err)
	assert.Equal(t, 64, limits.NameMaxLength)
	assert.True(t, decimal.RequireFromString("500.50").Equal(limits.RateMax))
}

func TestLimitsBadRateMax(t *testing.T) {
	v := viper.New()
	v.Set("limits.rate_max", "not-a-number")
	cfg := New(v)

	_, err := cfg.Limits()
	assert.Error(t, err)
}

func TestConfigLookups(t *testing.T) {
	v := viper.New()
	v.Set("console.prompt", "$ ")
	v.Set("console.history", 50)
	cfg := New(v)

	assert.Equal(t, "$ ", cfg.GetString("console.prompt"))
	assert.Equal(t, 50, cfg.GetInt("console.history"))
	assert.True(t, cfg.IsSet("console.prompt"))
	assert.False(t, cfg.IsSet("console.missing"))
}

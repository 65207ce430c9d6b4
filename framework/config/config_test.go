package config_test

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-divendor/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "LOG_LEVEL", "INSPECTOR_ADDR", "INSPECTOR_ENABLED", "METRICS_NAMESPACE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"App.Name", cfg.App.Name, "divendor"},
		{"App.Env", cfg.App.Env, "local"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Inspector.Enabled", cfg.Inspector.Enabled, true},
		{"Inspector.Addr", cfg.Inspector.Addr, ":8000"},
		{"Metrics.Enabled", cfg.Metrics.Enabled, true},
		{"Metrics.Namespace", cfg.Metrics.Namespace, "divendor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("INSPECTOR_ADDR", ":9000")
	t.Setenv("INSPECTOR_ENABLED", "false")

	cfg := config.Load("testdata/empty.env")

	assert.Equal(t, "MyApp", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, ":9000", cfg.Inspector.Addr)
	assert.False(t, cfg.Inspector.Enabled)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// godotenv does not override variables that are already set.
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("APP_NAME"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg := config.Load("testdata/app.env")
	assert.Equal(t, "FromDotEnv", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromViper_FlagOverride(t *testing.T) {
	v := config.NewViper("testdata/empty.env")
	v.Set("log_level", "warn")
	assert.Equal(t, "warn", config.FromViper(v).Log.Level)
}

func TestAppDebug(t *testing.T) {
	t.Setenv("APP_DEBUG", "false")
	assert.False(t, config.Load("testdata/empty.env").App.Debug)

	t.Setenv("APP_DEBUG", "true")
	assert.True(t, config.Load("testdata/empty.env").App.Debug)
}

// ── Logger ───────────────────────────────────────────────────────────────────

func TestLogger_Level(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}}
	log := cfg.Logger()
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "loud"}}
	assert.Equal(t, logrus.InfoLevel, cfg.Logger().GetLevel())
}

// ── GetInt ───────────────────────────────────────────────────────────────────

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, config.GetInt("SOME_INT", 0))

	t.Setenv("SOME_INT", "notanint")
	assert.Equal(t, 99, config.GetInt("SOME_INT", 99))

	t.Setenv("SOME_INT", "")
	assert.Equal(t, 7, config.GetInt("SOME_INT", 7))
}

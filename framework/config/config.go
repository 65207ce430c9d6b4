package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Inspector InspectorConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

type LogConfig struct {
	Level  string // logrus level name
	Format string // text | json
}

type InspectorConfig struct {
	Enabled bool
	Addr    string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

var defaults = map[string]any{
	"app_name":          "divendor",
	"app_env":           "local",
	"app_debug":         true,
	"log_level":         "info",
	"log_format":        "text",
	"inspector_enabled": true,
	"inspector_addr":    ":8000",
	"metrics_enabled":   true,
	"metrics_namespace": "divendor",
}

// Load reads .env (if present) and populates a Config from environment
// variables, falling back to defaults.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	return FromViper(NewViper(envFiles...))
}

// FromViper builds a Config from v. Keys are the lower-case env names
// ("log_level", "inspector_addr", ...), so flags bound into v override
// the environment.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:  v.GetString("app_name"),
			Env:   v.GetString("app_env"),
			Debug: v.GetBool("app_debug"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Inspector: InspectorConfig{
			Enabled: v.GetBool("inspector_enabled"),
			Addr:    v.GetString("inspector_addr"),
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("metrics_enabled"),
			Namespace: v.GetString("metrics_namespace"),
		},
	}
}

// NewViper returns a viper instance with the defaults set and the
// environment bound, after loading envFiles (".env" when none given).
func NewViper(envFiles ...string) *viper.Viper {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Logger builds a logrus logger from the log settings. An unknown level
// falls back to info.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if c.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

// GetInt returns an int env value, or defaultVal when unset or invalid.
func GetInt(key string, defaultVal int) int {
	raw := env().GetString(key)
	if raw == "" {
		return defaultVal
	}
	i, err := cast.ToIntE(raw)
	if err != nil {
		return defaultVal
	}
	return i
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

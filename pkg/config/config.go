package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream  UpstreamConfig
	Sessions  SessionConfig
	Relations RelationConfig
	Exports   ExportConfig
	Metrics   MetricsConfig
	CORS      CORSConfig
	Log       LogConfig
}

// UpstreamConfig points the portal at the remote REST API that owns the records.
type UpstreamConfig struct {
	BaseURL string
	// Timeout of zero leaves upstream calls unbounded.
	Timeout time.Duration
}

// SessionConfig controls workspace lifetime.
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// RelationConfig sizes the worker queue that resolves department rosters.
type RelationConfig struct {
	Workers    int
	BufferSize int
}

// ExportConfig toggles CSV/PDF export of list views.
type ExportConfig struct {
	Enabled bool
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 0),
	}

	cfg.Sessions = SessionConfig{
		IdleTTL:       parseDuration(v.GetString("SESSION_IDLE_TTL"), 30*time.Minute),
		SweepInterval: parseDuration(v.GetString("SESSION_SWEEP_INTERVAL"), time.Minute),
	}

	cfg.Relations = RelationConfig{
		Workers:    v.GetInt("RELATION_WORKERS"),
		BufferSize: v.GetInt("RELATION_BUFFER"),
	}

	cfg.Exports = ExportConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}
	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("UPSTREAM_BASE_URL", "https://milestone1-ogfx.onrender.com")
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")

	v.SetDefault("SESSION_IDLE_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")

	v.SetDefault("RELATION_WORKERS", 4)
	v.SetDefault("RELATION_BUFFER", 32)

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_METRICS", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

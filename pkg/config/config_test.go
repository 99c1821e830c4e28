package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "https://milestone1-ogfx.onrender.com", cfg.Upstream.BaseURL)
	assert.Zero(t, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
	assert.Equal(t, 4, cfg.Relations.Workers)
	assert.True(t, cfg.Exports.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("UPSTREAM_BASE_URL", "http://localhost:9000/")
	v.Set("UPSTREAM_TIMEOUT", "3s")
	v.Set("SESSION_IDLE_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := fromViper(v)
	assert.Equal(t, "http://localhost:9000", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

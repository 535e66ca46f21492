package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.Origins)
	assert.Equal(t, HandshakeStoreMemory, cfg.Twitter.HandshakeStore)
	assert.Equal(t, 15*time.Minute, cfg.Twitter.HandshakeTTL)
	assert.Equal(t, 10*time.Second, cfg.Twitter.HTTPTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("ORIGIN", "https://a.example,https://b.example")
	t.Setenv("TWITTER_API_KEY", "key")
	t.Setenv("TWITTER_API_SECRET", "secret")
	t.Setenv("HANDSHAKE_TOKEN_TTL", "5m")
	t.Setenv("FRONTEND_URL", "https://raiders.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.Origins)
	assert.Equal(t, "key", cfg.Twitter.APIKey)
	assert.Equal(t, 5*time.Minute, cfg.Twitter.HandshakeTTL)
	assert.Equal(t, "https://raiders.example", cfg.Frontend.URL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("HANDSHAKE_TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Twitter.HandshakeStore = HandshakeStoreMemory
	cfg.Twitter.HandshakeTTL = time.Minute
	cfg.Frontend.URL = "http://localhost:3000"
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Max = 10
	cfg.RateLimit.Window = time.Minute
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "redis store without redis",
			mutate:  func(c *Config) { c.Twitter.HandshakeStore = HandshakeStoreRedis },
			wantErr: "REDIS_ENABLED",
		},
		{
			name: "redis store with redis",
			mutate: func(c *Config) {
				c.Twitter.HandshakeStore = HandshakeStoreRedis
				c.Redis.Enabled = true
			},
		},
		{
			name:    "unknown store",
			mutate:  func(c *Config) { c.Twitter.HandshakeStore = "etcd" },
			wantErr: "unknown HANDSHAKE_STORE",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.Twitter.HandshakeTTL = 0 },
			wantErr: "HANDSHAKE_TOKEN_TTL",
		},
		{
			name:    "blank frontend",
			mutate:  func(c *Config) { c.Frontend.URL = "  " },
			wantErr: "FRONTEND_URL",
		},
		{
			name:    "bad rate limit",
			mutate:  func(c *Config) { c.RateLimit.Max = 0 },
			wantErr: "RATE_LIMIT_MAX",
		},
		{
			name: "rate limit disabled ignores values",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = false
				c.RateLimit.Max = 0
			},
		},
		{
			name:    "init data required without token",
			mutate:  func(c *Config) { c.Telegram.RequireInitData = true },
			wantErr: "TELEGRAM_BOT_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

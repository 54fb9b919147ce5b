package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[session]
secret = "`+secret+`"

[server]
http_port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "America/Santiago", cfg.Booking.Timezone)
	assert.Equal(t, 1500*time.Millisecond, cfg.Booking.PaymentDelay())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverridesPath(t *testing.T) {
	path := writeConfig(t, `
[session]
secret = "`+secret+`"

[storage]
driver = "postgres"

[database]
host = "db"
dbname = "salas"
user = "app"
password = "p@ss word"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/salas?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "short secret", mutate: func(c *Config) { c.Session.Secret = "short" }, want: "session.secret"},
		{name: "bad driver", mutate: func(c *Config) { c.Storage.Driver = "sqlite" }, want: "storage.driver"},
		{name: "bad timezone", mutate: func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }, want: "booking.timezone"},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }, want: "server.http_port"},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }, want: "redis.addr"},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimit.PerMinute = 0 }, want: "rate_limit"},
		{name: "bad trusted proxy", mutate: func(c *Config) { c.RateLimit.TrustedProxies = []string{"10.0.0.0/40"} }, want: "rate_limit.trusted_proxies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Session.Secret = secret
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	cfg := Default()
	cfg.Session.Secret = secret
	cfg.RateLimit.TrustedProxies = []string{"127.0.0.1", "10.0.0.0/8", "::1"}

	assert.NoError(t, cfg.Validate())
}

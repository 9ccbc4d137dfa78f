package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Stats.PageSize)
	assert.Equal(t, time.UTC, cfg.Stats.Location())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=portfolio sslmode=disable", cfg.Postgres.DSN())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("SERVER_PORT=9000\nUPSTREAM_BASE_URL=http://file.example\n"), 0o600))

	t.Setenv("UPSTREAM_BASE_URL", "https://env.example")
	t.Setenv("STATS_TIMEZONE", "Asia/Kolkata")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	t.Cleanup(func() { _ = os.Unsetenv("SERVER_PORT") })

	cfg, err := load(file)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://env.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "Asia/Kolkata", cfg.Stats.Location().String())
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 8080},
		Postgres: PostgresConfig{Host: "db", User: "u", DBName: "d"},
		Upstream: UpstreamConfig{BaseURL: "http://api"},
		Stats:    StatsConfig{Timezone: "UTC"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no_port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "no_db_user", mutate: func(c *Config) { c.Postgres.User = "" }},
		{name: "no_db_host", mutate: func(c *Config) { c.Postgres.Host = "" }},
		{name: "relative_upstream", mutate: func(c *Config) { c.Upstream.BaseURL = "/api" }},
		{name: "bad_timezone", mutate: func(c *Config) { c.Stats.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 5

[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "booking"

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
service_name = "dz-booking-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode) // default
	assert.Equal(t, "/metrics", cfg.Metrics.Path)    // default
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "logs/dz-booking.log", cfg.Logs.File)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "svc", Password: "secret",
		DBName: "booking", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=booking sslmode=disable",
		cfg.DSN())
}

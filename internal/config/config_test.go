package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("statusd", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statusd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "/v1", cfg.Server.Prefix)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9000"
  mode: debug
  read_timeout: 3s
  cors_origins: ["https://docs.example.com"]
redis:
  prefix: shared
database:
  dsn: postgres://u:p@db/status
`)
	t.Setenv("STATUSD_REDIS_ADDR", "cache:6380")

	cfg, err := Load(newFlags(t, "--config", path, "--address", ":9100", "--seed"))
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Address, "flag beats file")
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://docs.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr, "env beats default")
	assert.Equal(t, "shared", cfg.Redis.Prefix)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://u:p@db/status", cfg.Database.DSN)
}

func TestLoadUnsetFlagsKeepFileValues(t *testing.T) {
	path := writeConfig(t, "server:\n  address: \":7000\"\n")

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Address)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newFlags(t, "--seed"))
	assert.ErrorContains(t, err, "database.dsn")

	cfg := Config{Server: ServerConfig{Address: ":80", Prefix: "v1"}}
	assert.ErrorContains(t, cfg.Validate(), "must start with /")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: "dev"
storage_path: "test.db"
http_server:
  address: "localhost:9090"
api:
  base_url: "http://localhost:9090/api"
  timeout: "5s"
`), 0o644))

	os.Setenv("CONFIG_PATH", path)
	defer os.Unsetenv("CONFIG_PATH")

	cfg := MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "test.db", cfg.StoragePath)
	assert.Equal(t, "localhost:9090", cfg.HTTPServer.Addr)
	assert.Equal(t, "http://localhost:9090/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestMustLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: "dev"
http_server:
  address: "localhost:9090"
`), 0o644))

	os.Setenv("CONFIG_PATH", path)
	os.Setenv("HTTP_SERVER_ADDR", "localhost:7070")
	defer func() {
		os.Unsetenv("CONFIG_PATH")
		os.Unsetenv("HTTP_SERVER_ADDR")
	}()

	cfg := MustLoad()

	assert.Equal(t, "localhost:7070", cfg.HTTPServer.Addr)
}

func TestMustLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`env: "dev"`), 0o644))

	os.Setenv("CONFIG_PATH", path)
	defer os.Unsetenv("CONFIG_PATH")

	cfg := MustLoad()

	assert.Equal(t, "users.db", cfg.StoragePath)
	assert.Equal(t, "localhost:8082", cfg.HTTPServer.Addr)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

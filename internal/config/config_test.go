package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "OTEL_SERVICE_NAME", "MASSIOHEALTH_TELEMETRY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "massiohealth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.GetShutdownTimeout())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  port: 9090
  write_timeout: 30s
logging:
  level: debug
telemetry:
  enabled: true
  service_name: bmi-api
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.GetWriteTimeout())
	assert.Equal(t, 5*time.Second, cfg.Server.GetReadTimeout(), "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "bmi-api", cfg.Telemetry.ServiceName)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", " WARN ")
		t.Setenv("OTEL_SERVICE_NAME", "from-env")
		t.Setenv("MASSIOHEALTH_TELEMETRY", "true")

		cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "from-env", cfg.Telemetry.ServiceName)
		assert.True(t, cfg.Telemetry.Enabled)
	})

	t.Run("malformed values are ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "eighty")
		t.Setenv("MASSIOHEALTH_TELEMETRY", "maybe")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.False(t, cfg.Telemetry.Enabled)
	})
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := map[string]string{
		"port":     "server:\n  port: 70000\n",
		"level":    "logging:\n  level: loud\n",
		"duration": "server:\n  read_timeout: soon\n",
		"yaml":     "server: [\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

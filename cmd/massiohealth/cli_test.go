package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"massiohealth/internal/calculator"
	"massiohealth/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "OTEL_SERVICE_NAME", "MASSIOHEALTH_TELEMETRY"} {
		t.Setenv(k, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCalcPrintsResult(t *testing.T) {
	out, err := execute(t, "calc", "--weight", "70", "--height", "1.75")
	require.NoError(t, err)

	assert.Contains(t, out, "BMI:      22.9")
	assert.Contains(t, out, "Category: Normal Weight")
	assert.Contains(t, out, "Great! You have a healthy weight.")
}

func TestCalcJSON(t *testing.T) {
	out, err := execute(t, "calc", "-w", "90", "-H", "1.70", "--json")
	require.NoError(t, err)

	var resp calculator.BMIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, 31.1, resp.BMI)
	assert.Equal(t, "Obese", string(resp.Category))
}

func TestCalcRejectsZero(t *testing.T) {
	out, err := execute(t, "calc", "--weight", "0", "--height", "1.75")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "weight must be a positive number")
	assert.Empty(t, out)
}

func TestCalcRequiresBothFlags(t *testing.T) {
	_, err := execute(t, "calc", "--weight", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}

func TestCategoriesPlainMarkdown(t *testing.T) {
	out, err := execute(t, "categories", "--plain")
	require.NoError(t, err)

	assert.Equal(t, referenceMarkdown(), out)
	for _, row := range []string{"| Underweight | < 18.5 |", "| Normal Weight | 18.5 - 24.9 |", "| Overweight | 25.0 - 29.9 |", "| Obese | ≥ 30.0 |"} {
		assert.Contains(t, out, row)
	}
}

func TestCategoriesRendered(t *testing.T) {
	out, err := execute(t, "categories", "--style", "ascii")
	require.NoError(t, err)

	assert.Contains(t, out, "Normal Weight")
	assert.Contains(t, out, "18.5 - 24.9")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "calc", "-w", "70", "-H", "1.75"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "logging.level"), err.Error())
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MASSIOHEALTH_DOTENV_A=from-file\nMASSIOHEALTH_DOTENV_B=from-file\n"), 0o644))
	t.Chdir(dir)

	t.Setenv("MASSIOHEALTH_DOTENV_A", "from-process")
	t.Cleanup(func() { os.Unsetenv("MASSIOHEALTH_DOTENV_B") })

	require.NoError(t, loadDotEnv())

	assert.Equal(t, "from-process", os.Getenv("MASSIOHEALTH_DOTENV_A"))
	assert.Equal(t, "from-file", os.Getenv("MASSIOHEALTH_DOTENV_B"))
}

func TestLoadDotEnvLocalWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MASSIOHEALTH_DOTENV_C=shared\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("MASSIOHEALTH_DOTENV_C=local\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("MASSIOHEALTH_DOTENV_C") })

	require.NoError(t, loadDotEnv())
	assert.Equal(t, "local", os.Getenv("MASSIOHEALTH_DOTENV_C"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, loadDotEnv())
}

func TestInitTelemetryDisabled(t *testing.T) {
	shutdown, err := initTelemetry(context.Background(), config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileOverlay(t *testing.T) {
	oldOrigins, oldIP, oldWorkers := AllowedOrigins, ApplyLimitPerIP, ScoringWorkers
	t.Cleanup(func() {
		AllowedOrigins, ApplyLimitPerIP, ScoringWorkers = oldOrigins, oldIP, oldWorkers
	})

	path := filepath.Join(t.TempDir(), "hris.yaml")
	content := `
allowed_origins:
  - https://careers.example.com
rate_limit:
  per_ip: 3
scoring:
  workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, loadFile(path))

	assert.Contains(t, AllowedOrigins, "https://careers.example.com")
	assert.Equal(t, 3, ApplyLimitPerIP)
	assert.Equal(t, 4, ScoringWorkers)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HRIS_TEST_INT", "7")
	assert.Equal(t, 7, getEnvInt("HRIS_TEST_INT", 1))

	t.Setenv("HRIS_TEST_INT", "nope")
	assert.Equal(t, 1, getEnvInt("HRIS_TEST_INT", 1))
}

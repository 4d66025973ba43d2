package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/generator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSchedulerConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8081
scheduler:
  round_robin:
    time_quantum: 4
generator:
  seed: 11
  max_arrival: 20
  max_priority: 9
`)
	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.EqualValues(t, 11, cfg.Seed)
	assert.Equal(t, generator.Config{MinArrival: 0, MaxArrival: 20, MinBurst: 1, MaxBurst: 10, MinPriority: 1, MaxPriority: 9}, cfg.Generator)
}

func TestLoadSchedulerConfig_Defaults(t *testing.T) {
	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, generator.DefaultConfig(), cfg.Generator)
}

func TestLoadSchedulerConfig_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDSIM_PORT", "7000")
	t.Setenv("SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	cfg, err := LoadSchedulerConfig(writeConfig(t, "port: 8081\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_Errors(t *testing.T) {
	_, err := LoadSchedulerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSchedulerConfig(writeConfig(t, "generator:\n  min_burst: 0\n"))
	assert.Error(t, err)

	_, err = LoadSchedulerConfig(writeConfig(t, "port: [\n"))
	assert.Error(t, err)
}

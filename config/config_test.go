package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"player": { "maxSpeed": 0.8 },
		"damage": { "policy": "fixed", "amount": 25 },
		"course": { "file": "levels/turnpike.course" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir, nil))

	sim := Simulation()
	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 0.8, sim.MaxSpeed)
	assert.Equal(t, 0.01, sim.Acceleration)
	assert.Equal(t, "fixed", sim.DamagePolicy)
	assert.Equal(t, 25.0, sim.DamageAmount)
	assert.Equal(t, "levels/turnpike.course", sim.CourseFile)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir(), nil))

	sim := Simulation()
	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 39.49791, sim.ChunkLength)
	assert.Equal(t, 1.0, sim.ChunkMargin)
	assert.Equal(t, 0.6, sim.MaxSpeed)
	assert.Equal(t, "linear", sim.DamagePolicy)
	assert.Equal(t, 1.0, sim.DamageFactor)
	assert.Equal(t, 3, sim.TrafficPerChunk)
	assert.Equal(t, 3, sim.AheadChunks)
	assert.Equal(t, 1, sim.BehindChunks)
	assert.Equal(t, 4, sim.LaneCount)
	assert.Equal(t, 20, sim.CourseLength)
	assert.Equal(t, 5, sim.CheckpointEvery)
	assert.Equal(t, "", sim.CourseFile)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel": `), 0644))

	err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel": "warn"}`), 0644))

	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--log-level", "trace", "--course", "short.course"}))
	require.NoError(t, Load(dir, fs))

	assert.Equal(t, "trace", GetString("logLevel"))
	assert.Equal(t, "short.course", Simulation().CourseFile)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel": "warn"}`), 0644))

	fs := Flags()
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Load(dir, fs))

	assert.Equal(t, "warn", GetString("logLevel"))
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"Warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var console, file bytes.Buffer
	log := Setup(&console, &file, "warn")

	log.Info().Msg("chunk spawned")
	log.Warn().Str("kind", "police").Msg("asset load failed")

	assert.NotContains(t, console.String(), "chunk spawned")
	assert.Contains(t, console.String(), "asset load failed")
	assert.Contains(t, file.String(), "asset load failed")
	assert.Contains(t, file.String(), "kind=police")
	assert.NotContains(t, file.String(), "\x1b[", "file output has no colour codes")
}

func TestOpenLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	start := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	f, err := OpenLogFile(dir, "turnpike", start)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.True(t, strings.HasSuffix(f.Name(), "turnpike.20261017_093000.log"))
	_, err = os.Stat(f.Name())
	assert.NoError(t, err)
}

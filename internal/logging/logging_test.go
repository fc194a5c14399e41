package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)

	l, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupConsole(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	closeFn, err := Setup(Options{Level: "debug", Console: &buf, NoColor: true})
	require.NoError(t, err)
	defer closeFn()

	log.Debug().Str("key", "5").Msg("key accepted")
	assert.Contains(t, buf.String(), "key accepted")
	assert.Contains(t, buf.String(), "key=5")
}

func TestSetupQuietConsole(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	_, err := Setup(Options{Level: "debug", Console: &buf, NoColor: true, Quiet: true})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Error().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	path := filepath.Join(t.TempDir(), "logs", "keytimer.log")
	closeFn, err := Setup(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Info().Int("seconds", 90).Msg("countdown started")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"message":"countdown started"`)
	assert.Contains(t, string(b), `"seconds":90`)
}

package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/5w1tchy/bookshelf/internal/logging"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("component", "schema").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"schema"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	log := logging.New(&bytes.Buffer{}, "chatty", "json")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = logging.New(&bytes.Buffer{}, "", "json")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "debug", "console")
	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLogger(&bytes.Buffer{}, "").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger(&bytes.Buffer{}, "chatty").GetLevel())
}

func TestNewLoggerLeavesGlobalsAlone(t *testing.T) {
	before := zerolog.TimeFieldFormat
	_ = NewLogger(&bytes.Buffer{}, "debug")
	assert.Equal(t, before, zerolog.TimeFieldFormat)
}

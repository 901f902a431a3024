package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", "json", &buf)

	logger := New("test-component")
	logger.Info().Msg("hello")

	output := buf.String()
	assert.Contains(t, output, `"component":"test-component"`)
	assert.Contains(t, output, "hello")
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "console", &buf)

	logger := New("fmt-test")
	logger.Info().Msg("text check")

	output := buf.String()
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "component=fmt-test")
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "json", &buf)

	logger := New("json-test")
	logger.Info().Msg("json check")

	output := buf.String()
	assert.Contains(t, output, `"level":"info"`)
	assert.Contains(t, output, `"message":"json check"`)
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)

	logger := New("gate-test")
	logger.Info().Msg("should be suppressed")
	logger.Warn().Msg("should appear")

	output := buf.String()
	assert.NotContains(t, output, "should be suppressed")
	assert.Contains(t, output, "should appear")
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("verbose", "json", &buf)

	logger := New("fallback")
	logger.Debug().Msg("debug line")
	logger.Info().Msg("info line")

	output := buf.String()
	assert.NotContains(t, output, "debug line")
	assert.Contains(t, output, "info line")
}

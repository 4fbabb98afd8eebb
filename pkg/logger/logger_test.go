package logger_test

import (
	"bytes"
	"testing"

	"vegfeedback/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: "warn", Output: &buf})
	defer logger.Configure(logger.Config{Level: "info"})

	logger.Info().Msg("hidden")
	logger.Warn().Str("vegetable", "Spinach Curry").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"vegetable":"Spinach Curry"`)
	assert.Contains(t, out, `"level":"warn"`)
}

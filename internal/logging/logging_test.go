package logging

import (
	"bytes"
	"testing"

	"github.com/kdduha/vision-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	logger.WithField("route", "/analyze").Info("served")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"message":"served"`)
	assert.Contains(t, out, `"route":"/analyze"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: FormatText}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level, "console")
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, logger)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	logger, err := New("info", "json")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_EmptyFormatDefaultsToConsole(t *testing.T) {
	_, err := New("info", "")
	assert.NoError(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New("info", "xml")
	assert.Error(t, err)
}

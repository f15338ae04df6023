package log

import (
	stdlog "log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{" DEBUG ", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewAppliesLevel(t *testing.T) {
	logger := New(Config{Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestInitBridgesStdlib(t *testing.T) {
	Init(Config{Level: "info"})

	// After Init, stdlib log writes through zerolog.
	_, bridged := stdlog.Writer().(zerolog.Logger)
	assert.True(t, bridged, "stdlib log output should be a zerolog.Logger")
	assert.Equal(t, 0, stdlog.Flags())
}

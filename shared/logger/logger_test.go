package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"atoll/config"
	"atoll/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "atoll-test"

	assert.NotPanics(t, func() { logger.InitLogger(cfg) })
	assert.NotPanics(t, func() { logger.InitLogger(nil) })
	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("roster file unreadable"))

	assert.Contains(t, buf.String(), "roster file unreadable")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "bogus", want: zerolog.InfoLevel},
		{level: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

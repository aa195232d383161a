package config_test

import (
	"testing"

	"atoll/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AppliesDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INTAKE_PIN_ATTEMPTS", "3")

	require.NoError(t, config.Init())

	cfg := config.Get()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Intake.PinAttempts)
	assert.Equal(t, "atoll", cfg.App.Name)
	assert.Equal(t, "gemini-3-flash-preview", cfg.External.GenAI.Model)
	assert.InDelta(t, 0.7, cfg.External.GenAI.Temperature, 0.0001)
	assert.Equal(t, 60, cfg.Intake.PinWindowSeconds)
	assert.Equal(t, "atoll.events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Cache.Redis.Primary.Host)
}

package llm_test

import (
	"context"
	"errors"
	"testing"

	"atoll/config"
	"atoll/infras/llm"
	"atoll/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNew_WithoutAPIKeyIsDisabled(t *testing.T) {
	client := llm.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Enabled())

	text, err := client.Generate(context.Background(), "status?")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Empty(t, text)
}

func TestNew_ClientBuildFailureIsNotReportedAsMissingKey(t *testing.T) {
	boom := errors.New("invalid credentials format")
	restore := llm.SetNewClient(func(context.Context, *genai.ClientConfig) (*genai.Client, error) {
		return nil, boom
	})
	t.Cleanup(restore)

	cfg := &config.Config{}
	cfg.External.GenAI.APIKey = "key"

	client := llm.New(cfg, mocks.NewOtel())

	assert.True(t, client.Enabled(), "a configured key counts as enabled")

	text, err := client.Generate(context.Background(), "status?")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, llm.ErrNotConfigured)
	assert.Empty(t, text)
}

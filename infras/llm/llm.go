package llm

//go:generate go run go.uber.org/mock/mockgen -source=./llm.go -destination=./mocks/llm_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"atoll/config"
	"atoll/infras/otel"
	"atoll/shared/constant"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("llm api key not configured")
	ErrUnavailable   = errors.New("llm client unavailable")
)

var newClient = genai.NewClient

type Client interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) (text string, err error)
}

type genaiImpl struct {
	client *genai.Client
	// initErr is set when a key is configured but the client could not be built.
	initErr     error
	configured  bool
	model       string
	temperature float32
	otel        otel.Otel
}

// New returns a disabled client when EXTERNAL_GENAI_API_KEY is empty.
func New(config *config.Config, otel otel.Otel) Client {
	impl := &genaiImpl{
		model:       config.External.GenAI.Model,
		temperature: config.External.GenAI.Temperature,
		configured:  config.External.GenAI.APIKey != "",
		otel:        otel,
	}

	if config.External.GenAI.APIKey == "" {
		log.Warn().Msg("EXTERNAL_GENAI_API_KEY not set, smart summaries disabled")

		return impl
	}

	client, err := newClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.External.GenAI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create GenAI client")

		impl.initErr = err

		return impl
	}

	impl.client = client

	log.Info().Str("model", impl.model).Msg("GenAI client initialized")

	return impl
}

// Enabled reports whether an API key is configured, even if the client then failed to build.
func (g *genaiImpl) Enabled() bool {
	return g.configured
}

func (g *genaiImpl) Generate(ctx context.Context, prompt string) (text string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelLLMScopeName, constant.OtelLLMScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !g.configured {
		return constant.Empty, ErrNotConfigured
	}

	if g.client == nil {
		return constant.Empty, fmt.Errorf("%w: %w", ErrUnavailable, g.initErr)
	}

	scope.SetAttributes(map[string]any{
		"model":         g.model,
		"prompt.length": len(prompt),
	})

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("failed to generate content")

		return constant.Empty, fmt.Errorf("failed to generate content: %w", err)
	}

	return resp.Text(), nil
}

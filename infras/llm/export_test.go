package llm

import (
	"context"

	"google.golang.org/genai"
)

// SetNewClient swaps the GenAI constructor until the returned restore func is called.
func SetNewClient(fn func(ctx context.Context, cc *genai.ClientConfig) (*genai.Client, error)) (restore func()) {
	previous := newClient
	newClient = fn

	return func() { newClient = previous }
}

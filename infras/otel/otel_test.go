package otel_test

import (
	"context"
	"errors"
	"testing"

	"atoll/config"
	"atoll/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "atoll-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")
	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"guest":  "A Silva",
			"rooms":  2,
			"nights": int64(3),
			"ratio":  0.5,
			"ids":    []string{"r1", "r2"},
			"other":  struct{}{},
			"ok":     true,
		})
		scope.AddEvent("booking committed")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("pin mismatch"))
		scope.End()
	})
}

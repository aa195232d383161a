// Package events fans store mutations out to in-process subscribers and, when enabled, to Kafka.
package events

import (
	"context"
	"sync"
	"time"

	"atoll/config"
	"atoll/infras/kafka"
	"atoll/infras/otel"
	"atoll/shared/constant"
	"atoll/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	RoomStatusChanged Type = "room.status_changed"
	BookingCreated    Type = "booking.created"
	TransferCreated   Type = "transfer.created"
)

type Event struct {
	Type      Type      `json:"type"`
	EntityIDs []string  `json:"entity_ids"`
	Actor     string    `json:"actor"`
	At        time.Time `json:"at"`
}

// Handler runs on the publishing goroutine and must not block.
type Handler func(ctx context.Context, event Event)

type Bus interface {
	Publish(ctx context.Context, event Event)
	Subscribe(handler Handler)
}

type busImpl struct {
	mu       sync.RWMutex
	handlers []Handler
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, otel otel.Otel) Bus {
	return &busImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (b *busImpl) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}

func (b *busImpl) Publish(ctx context.Context, event Event) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if event.At.IsZero() {
		event.At = timezone.Now()
	}

	scope.SetAttributes(map[string]any{
		"event.type":     string(event.Type),
		"event.entities": len(event.EntityIDs),
	})

	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}

	if !b.cfg.Kafka.Enable || b.kafka == nil {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := b.kafka.SendMessages(c, b.cfg.Kafka.Topic, kafka.Message{Key: string(event.Type), Value: event})
		if err != nil {
			log.Error().Err(err).Str("event", string(event.Type)).Msg("failed to forward event to Kafka")
		}
	}()
}

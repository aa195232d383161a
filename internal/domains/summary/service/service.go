package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"atoll/config"
	"atoll/infras/llm"
	"atoll/infras/otel"
	bookingRepo "atoll/internal/domains/booking/repository"
	roomRepo "atoll/internal/domains/room/repository"
	"atoll/internal/domains/summary/model"
	"atoll/internal/domains/summary/model/dto"
	"atoll/internal/events"
	"atoll/shared"
	"atoll/shared/cache"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheSummary = "summary"

type Summary interface {
	// Current returns the displayed summary without waiting.
	Current(ctx context.Context) dto.SummaryResponse
	// Refresh regenerates the summary and returns the board afterwards.
	Refresh(ctx context.Context) dto.SummaryResponse
	// Summarize writes a summary of snapshot. It never fails; problems become fallback text.
	Summarize(ctx context.Context, snapshot model.Snapshot) string
	// Start refreshes once and again after every store event.
	Start(ctx context.Context, bus events.Bus)
}

type board struct {
	mu        sync.RWMutex
	text      string
	applied   uint64
	updatedAt time.Time
}

type serviceImpl struct {
	board       board
	generation  atomic.Uint64
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	llm         llm.Client
	cache       cache.Cache
	cfg         *config.Config
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, llm llm.Client, cache cache.Cache, cfg *config.Config, otel otel.Otel) Summary {
	return &serviceImpl{
		board:       board{text: model.Placeholder},
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		llm:         llm,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Current(_ context.Context) dto.SummaryResponse {
	s.board.mu.RLock()
	defer s.board.mu.RUnlock()

	res := dto.SummaryResponse{
		Summary:    s.board.text,
		Generation: s.board.applied,
		Enabled:    s.llm.Enabled(),
	}

	if !s.board.updatedAt.IsZero() {
		res.UpdatedAt = timezone.Format(s.board.updatedAt, constant.DateFormat)
	}

	return res
}

// Refresh takes the next generation before reading the store. Its result is only shown when no
// later generation has been shown already, so a slow model call cannot overwrite a newer summary.
func (s *serviceImpl) Refresh(ctx context.Context) dto.SummaryResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()

	generation := s.generation.Add(1)
	scope.SetAttribute("generation", generation)

	if timeout := s.cfg.Summary.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	text := model.Failed

	if snapshot, err := s.snapshot(ctx); err == nil {
		text = s.Summarize(ctx, snapshot)
	}

	if !s.apply(generation, text) {
		log.Debug().Uint64("generation", generation).Msg("discarding superseded summary")
	}

	return s.Current(ctx)
}

func (s *serviceImpl) Summarize(ctx context.Context, snapshot model.Snapshot) (text string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summarize")
	defer scope.End()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("summary generation panicked")

			text = model.Failed
		}
	}()

	if !s.llm.Enabled() {
		return model.NotConfigured
	}

	prompt, err := snapshot.Prompt()
	if err != nil {
		log.Error().Err(err).Msg("failed to build summary prompt")

		return model.Failed
	}

	hash := sha256.Sum256([]byte(prompt))
	cacheKey := shared.BuildCacheKey(cacheSummary, hex.EncodeToString(hash[:]))

	if err = s.cache.Get(ctx, cacheKey, &text); err == nil && text != constant.Empty {
		scope.AddEvent("cache hit")

		return text
	}

	text, err = s.llm.Generate(ctx, prompt)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch smart summary")

		return model.Failed
	}

	text = strings.TrimSpace(text)
	if text == constant.Empty {
		return model.Empty
	}

	if err = s.cache.Save(ctx, cacheKey, text, s.cfg.Summary.CacheTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save summary to cache")
	}

	return text
}

func (s *serviceImpl) Start(ctx context.Context, bus events.Bus) {
	bus.Subscribe(func(ctx context.Context, event events.Event) {
		log.Debug().Str("event", string(event.Type)).Msg("refreshing summary")

		go s.Refresh(context.WithoutCancel(ctx))
	})

	go s.Refresh(context.WithoutCancel(ctx))
}

func (s *serviceImpl) apply(generation uint64, text string) bool {
	s.board.mu.Lock()
	defer s.board.mu.Unlock()

	if generation <= s.board.applied {
		return false
	}

	s.board.text = text
	s.board.applied = generation
	s.board.updatedAt = timezone.Now()

	return true
}

func (s *serviceImpl) snapshot(ctx context.Context) (model.Snapshot, error) {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for summary")

		return model.Snapshot{}, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for summary")

		return model.Snapshot{}, fmt.Errorf("failed to get bookings: %w", err)
	}

	return model.NewSnapshot(rooms, bookings), nil
}

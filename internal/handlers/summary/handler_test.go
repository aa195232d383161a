package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atoll/config"
	llmMocks "atoll/infras/llm/mocks"
	"atoll/infras/otel/mocks"
	bookingRepo "atoll/internal/domains/booking/repository"
	roomRepo "atoll/internal/domains/room/repository"
	"atoll/internal/domains/summary/model/dto"
	"atoll/internal/domains/summary/service"
	"atoll/internal/handlers/summary"
	"atoll/roster"
	"atoll/shared/cache"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Summary(t *testing.T) {
	otl := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.Summary.TimeoutSeconds = 5
	cfg.Summary.CacheTTLSeconds = 60

	rooms, err := roomRepo.New(&roster.Roster{Rooms: []roster.Room{{ID: "r101", Name: "101", Type: "Twin Room"}}}, otl)
	require.NoError(t, err)

	client := llmMocks.NewMockClient(gomock.NewController(t))
	client.EXPECT().Enabled().Return(true).AnyTimes()
	client.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("All rooms ready. No arrivals today.", nil)

	memory := cache.NewMemoryCache(gocache.New(time.Minute, time.Minute), otl)
	handler := summary.New(service.New(rooms, bookingRepo.New(otl), client, memory, cfg, otl), otl)

	router := chi.NewRouter()
	handler.Router(router)

	read := func(method, target string) dto.SummaryResponse {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		res := response.Data[dto.SummaryResponse]{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.NotNil(t, res.Data)

		return *res.Data
	}

	before := read(http.MethodGet, "/summary")
	assert.Equal(t, "Loading smart status...", before.Summary)
	assert.True(t, before.Enabled)

	refreshed := read(http.MethodPost, "/summary/refresh")
	assert.Equal(t, "All rooms ready. No arrivals today.", refreshed.Summary)
	assert.Equal(t, uint64(1), refreshed.Generation)
	assert.NotEmpty(t, refreshed.UpdatedAt)

	assert.Equal(t, refreshed, read(http.MethodGet, "/summary"))
}

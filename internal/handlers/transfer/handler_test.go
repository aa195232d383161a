package transfer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atoll/config"
	"atoll/infras/otel/mocks"
	bookingRepo "atoll/internal/domains/booking/repository"
	staffRepo "atoll/internal/domains/staff/repository"
	staffService "atoll/internal/domains/staff/service"
	"atoll/internal/domains/transfer/model/dto"
	"atoll/internal/domains/transfer/repository"
	"atoll/internal/domains/transfer/service"
	"atoll/internal/events"
	"atoll/internal/handlers/transfer"
	"atoll/roster"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	otl := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.Intake.PinAttempts = 5
	cfg.Intake.PinWindowSeconds = 60

	members, err := staffRepo.New(&roster.Roster{Staff: []roster.Staff{
		{ID: "s2", Name: "Mariyam Shifa", PIN: "5678", Palette: "rose"},
	}}, otl)
	require.NoError(t, err)

	transfers := repository.New(otl)
	bookings := bookingRepo.New(otl)
	staff := staffService.New(cfg, members, bookings, transfers, otl)

	handler := transfer.New(service.New(transfers, bookings, staff, events.New(cfg, nil, otl), otl), otl)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

const assignBody = `{
	"staff_id": "s2",
	"pin": "5678",
	"guest_name": "Omar Rasheed",
	"date": "2030-01-04",
	"time": "10:45",
	"route": "Male to Dhangethi",
	"seats": 2
}`

func TestHandler_AssignTransfer(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodPost, "/transfers", assignBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	assigned := response.Data[dto.AssignTransferResponse]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assigned))
	require.NotNil(t, assigned.Data)
	assert.Equal(t, "09:45", assigned.Data.Transfer.Time, "Friday departures move to 09:45")
	assert.Len(t, assigned.Data.Corrections, 1)

	rec = serve(router, http.MethodGet, "/transfers?date=2030-01-04&status=Pending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := response.Data[dto.GetTransfersResponse]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.NotNil(t, list.Data)
	assert.Equal(t, 1, list.Data.TotalData)

	rec = serve(router, http.MethodGet, "/transfers?date=2030-01-05", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Data.TotalData)
}

func TestHandler_AssignTransferRejected(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodPost, "/transfers", strings.Replace(assignBody, `"5678"`, `"0000"`, 1))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "0000", "the PIN is never echoed")
	assert.Contains(t, rec.Body.String(), `"guest_name":"Omar Rasheed"`)

	rec = serve(router, http.MethodPost, "/transfers", `{"guest_name":"Omar Rasheed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetOptions(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodGet, "/transfers/options?date=2030-01-07", "")
	require.Equal(t, http.StatusOK, rec.Code)

	options := response.Data[dto.OptionsResponse]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	require.NotNil(t, options.Data)
	assert.Equal(t, "Monday", options.Data.Weekday)
	assert.Equal(t, []string{"10:45", "16:00"}, options.Data.Departures)

	rec = serve(router, http.MethodGet, "/transfers/options?date=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodGet, "/transfers?date=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

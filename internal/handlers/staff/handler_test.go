package staff_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atoll/config"
	"atoll/infras/otel/mocks"
	bookingModel "atoll/internal/domains/booking/model"
	bookingRepo "atoll/internal/domains/booking/repository"
	"atoll/internal/domains/staff/model/dto"
	"atoll/internal/domains/staff/repository"
	"atoll/internal/domains/staff/service"
	transferRepo "atoll/internal/domains/transfer/repository"
	"atoll/internal/handlers/staff"
	"atoll/roster"
	"atoll/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetStaff(t *testing.T) {
	otl := mocks.NewOtel()

	repo, err := repository.New(&roster.Roster{Staff: []roster.Staff{
		{ID: "s1", Name: "Ahmed Naseer", PIN: "1234", Palette: "indigo"},
		{ID: "s2", Name: "Mariyam Shifa", PIN: "5678"},
	}}, otl)
	require.NoError(t, err)

	bookings := bookingRepo.New(otl)
	require.NoError(t, bookings.InsertBulk(context.Background(), []bookingModel.Booking{
		{ID: "b1", RoomID: "r101", GuestName: "Hassan", StartDate: "2030-01-01", EndDate: "2030-01-03", StaffID: "s1"},
	}))

	cfg := &config.Config{}
	cfg.Intake.PinAttempts = 5
	cfg.Intake.PinWindowSeconds = 60

	handler := staff.New(service.New(cfg, repo, bookings, transferRepo.New(otl), otl), otl)

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "1234")

	body := response.Data[dto.GetStaffResponse]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	require.Len(t, body.Data.Staff, 2)

	assert.Equal(t, "Ahmed Naseer", body.Data.Staff[0].Name)
	assert.Equal(t, 1, body.Data.Staff[0].BookingCount)
	assert.Equal(t, "indigo", body.Data.Staff[0].Palette.Name)
	assert.Equal(t, "teal", body.Data.Staff[1].Palette.Name)
	assert.Equal(t, 0, body.Data.Staff[1].BookingCount)
}

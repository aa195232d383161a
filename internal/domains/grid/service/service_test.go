package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"atoll/infras/otel/mocks"
	bookingMocks "atoll/internal/domains/booking/mocks"
	bookingModel "atoll/internal/domains/booking/model"
	bookingRepo "atoll/internal/domains/booking/repository"
	"atoll/internal/domains/grid/service"
	roomModel "atoll/internal/domains/room/model"
	roomRepo "atoll/internal/domains/room/repository"
	staffRepo "atoll/internal/domains/staff/repository"
	transferRepo "atoll/internal/domains/transfer/repository"
	"atoll/roster"
	"atoll/shared/calendar"
	"atoll/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var rost = &roster.Roster{
	Staff: []roster.Staff{{ID: "s1", Name: "Ahmed Naseer", PIN: "1234", Palette: "indigo"}},
	Rooms: []roster.Room{
		{ID: "r201", Name: "201", Type: string(roomModel.TypeDouble)},
		{ID: "r101", Name: "101", Type: string(roomModel.TypeTwin)},
	},
}

func newService(t *testing.T, bookings bookingRepo.Booking) service.Grid {
	t.Helper()

	otl := mocks.NewOtel()

	rooms, err := roomRepo.New(rost, otl)
	require.NoError(t, err)

	staff, err := staffRepo.New(rost, otl)
	require.NoError(t, err)

	return service.New(rooms, bookings, transferRepo.New(otl), staff, otl)
}

func TestGrid_Get(t *testing.T) {
	bookings := bookingRepo.New(mocks.NewOtel())
	require.NoError(t, bookings.InsertBulk(context.Background(), []bookingModel.Booking{
		{ID: "b1", RoomID: "r101", GuestName: "Aisha Silva", StartDate: "2030-02-27", EndDate: "2030-03-02", StaffID: "s1"},
	}))

	svc := newService(t, bookings)

	res, err := svc.Get(context.Background(), "2030-03")
	require.NoError(t, err)

	assert.Equal(t, "2030-03", res.Month)
	assert.Equal(t, "2030-02", res.Previous)
	assert.Equal(t, "2030-04", res.Next)
	require.Len(t, res.Days, 31)

	require.Len(t, res.Sections, 2)
	twin := res.Sections[0].Rows[0]
	assert.Equal(t, "r101", twin.RoomID)
	assert.Equal(t, "b1", twin.Cells[0].Stay.BookingID)
	assert.False(t, twin.Cells[0].IsStart, "the stay started in February")
	assert.Nil(t, twin.Cells[2].Stay)
	assert.Equal(t, "Ahmed Naseer", twin.Cells[1].Stay.StaffName)
}

func TestGrid_GetDefaultsToCurrentMonth(t *testing.T) {
	svc := newService(t, bookingRepo.New(mocks.NewOtel()))

	res, err := svc.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, calendar.Today()[:7], res.Month)
}

func TestGrid_GetErrors(t *testing.T) {
	t.Run("bad month", func(t *testing.T) {
		svc := newService(t, bookingRepo.New(mocks.NewOtel()))

		_, err := svc.Get(context.Background(), "March")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := bookingMocks.NewMockBooking(ctrl)
		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := newService(t, bookings).Get(context.Background(), "2030-03")
		assert.Error(t, err)
	})
}

package model_test

import (
	"testing"
	"time"

	bookingModel "atoll/internal/domains/booking/model"
	"atoll/internal/domains/grid/model"
	roomModel "atoll/internal/domains/room/model"
	staffModel "atoll/internal/domains/staff/model"
	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input() model.Input {
	return model.Input{
		Year:  2024,
		Month: time.June,
		Today: timezone.Date(2024, time.June, 3),
		Rooms: []roomModel.Room{
			{ID: "r201", Name: "201", Type: roomModel.TypeDouble, Status: roomModel.StatusReady},
			{ID: "r101", Name: "101", Type: roomModel.TypeTwin, Status: roomModel.StatusOccupied},
			{ID: "r102", Name: "102", Type: roomModel.TypeTwin, Status: roomModel.StatusCleaning},
		},
		Bookings: []bookingModel.Booking{
			{ID: "b1", RoomID: "r101", GuestName: "Aisha Silva", StartDate: "2024-06-03", EndDate: "2024-06-06", StaffID: "s1"},
			{ID: "b2", RoomID: "r101", GuestName: "Omar Rasheed", StartDate: "2024-06-05", EndDate: "2024-06-08", StaffID: "s2"},
			{ID: "b3", RoomID: "r201", GuestName: "Lina", StartDate: "2024-05-30", EndDate: "2024-06-02", StaffID: "ghost",
				HasTransfer: true, Transfer: &bookingModel.Transfer{Time: "10:45", Status: transferModel.StatusPending}},
		},
		Speedboats: []transferModel.SpeedboatBooking{{ID: "t1", GuestName: "Sara", Date: "2024-06-03", Time: "16:00"}},
		Staff: []staffModel.Staff{
			{ID: "s1", Name: "Ahmed Naseer", Palette: "indigo"},
			{ID: "s2", Name: "Mariyam Shifa", Palette: "rose"},
		},
	}
}

func TestProject_Layout(t *testing.T) {
	grid := model.Project(input())

	assert.Equal(t, "2024-06", grid.Month)
	require.Len(t, grid.Days, 30)
	assert.Equal(t, "2024-06-01", grid.Days[0].Date)
	assert.Equal(t, "Sat", grid.Days[0].Weekday)
	assert.True(t, grid.Days[0].IsWeekend)
	assert.False(t, grid.Days[2].IsWeekend)
	assert.True(t, grid.Days[2].IsToday)

	require.Len(t, grid.Sections, 2)
	assert.Equal(t, roomModel.TypeTwin, grid.Sections[0].Type)
	assert.Equal(t, "r101", grid.Sections[0].Rows[0].RoomID)
	assert.Equal(t, "r102", grid.Sections[0].Rows[1].RoomID)
	assert.Equal(t, roomModel.TypeDouble, grid.Sections[1].Type)
	assert.Equal(t, "r201", grid.Sections[1].Rows[0].RoomID)

	for _, row := range grid.Sections[0].Rows {
		assert.Len(t, row.Cells, 30)
	}
}

func TestProject_Cells(t *testing.T) {
	grid := model.Project(input())
	r101 := grid.Sections[0].Rows[0].Cells

	start := r101[2]
	assert.True(t, start.IsStart)
	require.NotNil(t, start.Stay)
	assert.Equal(t, "b1", start.Stay.BookingID)
	assert.Equal(t, "Aisha", start.Stay.FirstName)
	assert.Equal(t, 3, start.Stay.Nights)
	assert.Equal(t, "Ahmed Naseer", start.Stay.StaffName)
	assert.Equal(t, "#4f46e5", start.Stay.Color.Solid)

	assert.Nil(t, r101[1].Stay)

	overlap := r101[4]
	assert.Equal(t, "b1", overlap.Stay.BookingID, "the first inserted booking wins")
	assert.False(t, overlap.IsStart)
	assert.Empty(t, overlap.Stay.FirstName)

	checkout := r101[5]
	assert.Equal(t, "b1", checkout.Stay.BookingID, "the check-out day is covered")

	later := r101[6]
	assert.Equal(t, "b2", later.Stay.BookingID)
	assert.False(t, later.IsStart, "the start cell of b2 was taken by b1")

	assert.Nil(t, r101[8].Stay)

	r201 := grid.Sections[1].Rows[0].Cells
	assert.Equal(t, "b3", r201[0].Stay.BookingID)
	assert.False(t, r201[0].IsStart)
	assert.Equal(t, "#0d9488", r201[0].Stay.Color.Solid, "unknown staff fall back to teal")
	assert.Empty(t, r201[0].Stay.StaffName)
	assert.Nil(t, r201[2].Stay)
}

func TestProject_Boats(t *testing.T) {
	in := input()
	in.Bookings = append(in.Bookings, bookingModel.Booking{
		ID: "b4", RoomID: "r102", GuestName: "Hassan", StartDate: "2024-06-03", EndDate: "2024-06-04", HasTransfer: true,
	})

	grid := model.Project(in)

	require.Len(t, grid.Boats, 30)
	day := grid.Boats[2]
	assert.True(t, day.IsToday)
	require.Len(t, day.Transfers, 2)
	assert.Equal(t, "b4", day.Transfers[0].ID)
	assert.Equal(t, "t1", day.Transfers[1].ID)
	assert.Empty(t, grid.Boats[0].Transfers, "b3 starts in May")
}

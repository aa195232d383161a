package model_test

import (
	"fmt"
	"testing"

	bookingModel "atoll/internal/domains/booking/model"
	"atoll/internal/domains/logistics/model"
	transferModel "atoll/internal/domains/transfer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}

	return out
}

func TestMerge(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: "b1", GuestName: "Aisha", StartDate: "2024-06-05", HasTransfer: true,
			Transfer: &bookingModel.Transfer{Time: "10:45", ReturnTime: "07:00", Status: transferModel.StatusConfirmed}},
		{ID: "b2", GuestName: "Hassan", StartDate: "2024-06-01"},
		{ID: "b3", GuestName: "Lina", StartDate: "2024-06-03", HasTransfer: true},
	}
	speedboats := []transferModel.SpeedboatBooking{
		{ID: "t1", GuestName: "Omar", Date: "2024-06-05", Time: "16:00", Route: transferModel.RouteMaleToDhangethi, Seats: 2,
			Status: transferModel.StatusPending},
		{ID: "t2", GuestName: "Sara", Date: "2024-06-02", Time: "09:45", Status: transferModel.StatusArrived},
	}

	entries := model.Merge(bookings, speedboats)

	assert.Equal(t, []string{"t2", "b3", "b1", "t1"}, ids(entries), "same day keeps bookings before speedboats")

	assert.Equal(t, "N/A", entries[1].Time)
	assert.Equal(t, transferModel.StatusPending, entries[1].Status)
	assert.Equal(t, model.SourceBooking, entries[1].Source)

	assert.Equal(t, "07:00", entries[2].ReturnTime)
	assert.Equal(t, model.SourceSpeedboat, entries[3].Source)
	assert.Equal(t, 2, entries[3].Seats)
}

func TestFeed_Truncates(t *testing.T) {
	speedboats := make([]transferModel.SpeedboatBooking, 0, 12)
	for i := 12; i > 0; i-- {
		speedboats = append(speedboats, transferModel.SpeedboatBooking{ID: fmt.Sprintf("t%d", i), Date: fmt.Sprintf("2024-06-%02d", i)})
	}

	feed := model.Feed(model.Merge(nil, speedboats))

	require.Len(t, feed, model.FeedLimit)
	assert.Equal(t, "t1", feed[0].ID)
	assert.Equal(t, "t8", feed[7].ID)

	assert.Empty(t, model.Feed(nil))
}

func TestOnDay(t *testing.T) {
	bookings := []bookingModel.Booking{{ID: "b1", StartDate: "2024-06-05", HasTransfer: true}}
	speedboats := []transferModel.SpeedboatBooking{
		{ID: "t1", Date: "2024-06-05"},
		{ID: "t2", Date: "2024-06-06"},
	}

	day := model.OnDay(model.Merge(bookings, speedboats), "2024-06-05")

	assert.Equal(t, []string{"b1", "t1"}, ids(day))
	assert.Empty(t, model.OnDay(nil, "2024-06-05"))
}

package model

import (
	"slices"

	bookingModel "atoll/internal/domains/booking/model"
	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared/calendar"
	"atoll/shared/constant"
)

const FeedLimit = 8

type Source string

const (
	SourceBooking   Source = "booking"
	SourceSpeedboat Source = "speedboat"
)

// Entry is one boat movement, taken from a booking's embedded transfer or a standalone speedboat booking.
type Entry struct {
	ID         string               `json:"id"`
	GuestName  string               `json:"guest_name"`
	Time       string               `json:"time"`
	ReturnTime string               `json:"return_time,omitempty"`
	Date       string               `json:"date"`
	Status     transferModel.Status `json:"status"`
	Source     Source               `json:"source"`
	Route      string               `json:"route,omitempty"`
	Seats      int                  `json:"seats,omitempty"`
}

func FromBooking(booking bookingModel.Booking) Entry {
	entry := Entry{
		ID:         booking.ID,
		GuestName:  booking.GuestName,
		Time:       booking.TransferTime(),
		ReturnTime: booking.TransferReturnTime(),
		Date:       booking.StartDate,
		Status:     booking.TransferStatus(),
		Source:     SourceBooking,
	}

	if entry.Time == constant.Empty {
		entry.Time = constant.NotAvailable
	}

	return entry
}

func FromSpeedboat(speedboat transferModel.SpeedboatBooking) Entry {
	return Entry{
		ID:         speedboat.ID,
		GuestName:  speedboat.GuestName,
		Time:       speedboat.Time,
		ReturnTime: speedboat.ReturnTime,
		Date:       speedboat.Date,
		Status:     speedboat.Status,
		Source:     SourceSpeedboat,
		Route:      speedboat.Route,
		Seats:      speedboat.Seats,
	}
}

// Merge lists booking transfers, then speedboat bookings, stably sorted by calendar date so entries
// on the same day keep that order. Bookings without a transfer are skipped.
func Merge(bookings []bookingModel.Booking, speedboats []transferModel.SpeedboatBooking) []Entry {
	entries := make([]Entry, 0, len(bookings)+len(speedboats))

	for _, booking := range bookings {
		if booking.HasTransfer {
			entries = append(entries, FromBooking(booking))
		}
	}

	for _, speedboat := range speedboats {
		entries = append(entries, FromSpeedboat(speedboat))
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return calendar.Compare(a.Date, b.Date)
	})

	return entries
}

// Feed is the first FeedLimit entries of a merged list.
func Feed(entries []Entry) []Entry {
	return entries[:min(len(entries), FeedLimit)]
}

// OnDay keeps the entries dated date, in merged order.
func OnDay(entries []Entry, date string) []Entry {
	day := make([]Entry, 0)

	for _, entry := range entries {
		if entry.Date == date {
			day = append(day, entry)
		}
	}

	return day
}

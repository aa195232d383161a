package model

import (
	"time"

	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	"atoll/shared/model"
)

const (
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldGuestName   = "guest_name"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStaffID     = "staff_id"
	FieldHasTransfer = "has_transfer"
)

// Transfer is the speedboat leg booked together with a stay.
type Transfer struct {
	Time       string               `json:"time"`
	ReturnTime string               `json:"return_time,omitempty"`
	Status     transferModel.Status `json:"status"`
}

// Booking is one room over an inclusive range of calendar dates. A stay across several rooms is
// stored as one Booking per room.
type Booking struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	GuestName   string    `db:"guest_name"`
	StartDate   string    `db:"start_date"`
	EndDate     string    `db:"end_date"`
	StaffID     string    `db:"staff_id"`
	Notes       string    `db:"notes"`
	HasTransfer bool      `db:"has_transfer"`
	Transfer    *Transfer `db:"transfer"`
	model.Metadata
}

// Nights is zero when either date is unparseable.
func (b Booking) Nights() int {
	nights, err := calendar.Nights(b.StartDate, b.EndDate)
	if err != nil {
		return 0
	}

	return nights
}

func (b Booking) Covers(day time.Time) bool {
	return calendar.IsDateInRange(day, b.StartDate, b.EndDate)
}

func (b Booking) Overlaps(start, end string) bool {
	return calendar.Overlaps(b.StartDate, b.EndDate, start, end)
}

func (b Booking) TransferTime() string {
	if b.Transfer == nil {
		return constant.Empty
	}

	return b.Transfer.Time
}

func (b Booking) TransferReturnTime() string {
	if b.Transfer == nil {
		return constant.Empty
	}

	return b.Transfer.ReturnTime
}

func (b Booking) TransferStatus() transferModel.Status {
	if b.Transfer == nil {
		return transferModel.StatusPending
	}

	return b.Transfer.Status
}

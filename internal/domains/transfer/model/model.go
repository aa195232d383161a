package model

import (
	"slices"

	"atoll/shared/model"
)

const (
	EntityName = "speedboat"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldStaffID   = "staff_id"
)

// Status is shared by transfers embedded in a booking and standalone speedboat bookings.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusArrived   Status = "Arrived"
	StatusDeparted  Status = "Departed"
	StatusCancelled Status = "Cancelled"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusArrived, StatusDeparted, StatusCancelled}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

const (
	RouteMaleToDhangethi    = "Male to Dhangethi"
	RouteDhangethiToMale    = "Dhangethi to Male"
	RouteAirportToDhangethi = "Airport to Dhangethi"
)

var Routes = []string{RouteMaleToDhangethi, RouteDhangethiToMale, RouteAirportToDhangethi}

func ValidRoute(route string) bool {
	return slices.Contains(Routes, route)
}

type SpeedboatBooking struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	GuestName  string `db:"guest_name"`
	Date       string `db:"date"`
	Time       string `db:"time"`
	ReturnDate string `db:"return_date"`
	ReturnTime string `db:"return_time"`
	Route      string `db:"route"`
	Seats      int    `db:"seats"`
	Status     Status `db:"status"`
	StaffID    string `db:"staff_id"`
	model.Metadata
}

func (b SpeedboatBooking) HasReturn() bool {
	return b.ReturnTime != ""
}

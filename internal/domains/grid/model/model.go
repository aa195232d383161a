// Package model projects bookings onto a month of room/day cells.
package model

import (
	"strings"
	"time"

	bookingModel "atoll/internal/domains/booking/model"
	logisticsModel "atoll/internal/domains/logistics/model"
	roomModel "atoll/internal/domains/room/model"
	staffModel "atoll/internal/domains/staff/model"
	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared/calendar"
	"atoll/shared/constant"
)

type Day struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	Weekday   string `json:"weekday"`
	IsToday   bool   `json:"is_today"`
	IsWeekend bool   `json:"is_weekend"`
}

// Stay is the booking occupying a cell.
type Stay struct {
	BookingID   string                 `json:"booking_id"`
	GuestName   string                 `json:"guest_name"`
	FirstName   string                 `json:"first_name,omitempty"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Nights      int                    `json:"nights"`
	StaffID     string                 `json:"staff_id"`
	StaffName   string                 `json:"staff_name,omitempty"`
	Color       staffModel.Palette     `json:"color"`
	HasTransfer bool                   `json:"has_transfer"`
	Transfer    *bookingModel.Transfer `json:"transfer,omitempty"`
}

type Cell struct {
	Date      string `json:"date"`
	IsToday   bool   `json:"is_today"`
	IsWeekend bool   `json:"is_weekend"`
	IsStart   bool   `json:"is_start"`
	Stay      *Stay  `json:"stay,omitempty"`
}

type Row struct {
	RoomID string           `json:"room_id"`
	Name   string           `json:"name"`
	Status roomModel.Status `json:"status"`
	Cells  []Cell           `json:"cells"`
}

type Section struct {
	Type roomModel.Type `json:"type"`
	Rows []Row          `json:"rows"`
}

type BoatDay struct {
	Date      string                 `json:"date"`
	IsToday   bool                   `json:"is_today"`
	Transfers []logisticsModel.Entry `json:"transfers"`
}

type Grid struct {
	Month    string    `json:"month"`
	Days     []Day     `json:"days"`
	Boats    []BoatDay `json:"boats"`
	Sections []Section `json:"sections"`
}

// Input is everything a projection reads. Rooms and Bookings are in store insertion order.
type Input struct {
	Year       int
	Month      time.Month
	Today      time.Time
	Rooms      []roomModel.Room
	Bookings   []bookingModel.Booking
	Speedboats []transferModel.SpeedboatBooking
	Staff      []staffModel.Staff
}

// Project builds the month grid. A cell shows the first booking, in insertion order, for its room whose
// inclusive range contains the day.
func Project(in Input) Grid {
	days := calendar.DaysInMonth(in.Year, in.Month)

	staff := make(map[string]staffModel.Staff, len(in.Staff))
	for _, member := range in.Staff {
		staff[member.ID] = member
	}

	grid := Grid{
		Month:    days[0].Format(constant.MonthLayout),
		Days:     make([]Day, len(days)),
		Boats:    make([]BoatDay, len(days)),
		Sections: make([]Section, 0, len(roomModel.Types)),
	}

	transfers := logisticsModel.Merge(in.Bookings, in.Speedboats)

	for i, day := range days {
		date := calendar.FormatDate(day)
		isToday := calendar.IsSameDay(day, in.Today)

		grid.Days[i] = Day{
			Date:      date,
			Day:       day.Day(),
			Weekday:   day.Weekday().String()[:3],
			IsToday:   isToday,
			IsWeekend: calendar.IsWeekend(day),
		}
		grid.Boats[i] = BoatDay{
			Date:      date,
			IsToday:   isToday,
			Transfers: logisticsModel.OnDay(transfers, date),
		}
	}

	for _, roomType := range roomModel.Types {
		section := Section{Type: roomType, Rows: []Row{}}

		for _, room := range in.Rooms {
			if room.Type == roomType {
				section.Rows = append(section.Rows, projectRow(room, grid.Days, days, in.Bookings, staff))
			}
		}

		grid.Sections = append(grid.Sections, section)
	}

	return grid
}

func projectRow(room roomModel.Room, header []Day, days []time.Time, bookings []bookingModel.Booking, staff map[string]staffModel.Staff) Row {
	row := Row{RoomID: room.ID, Name: room.Name, Status: room.Status, Cells: make([]Cell, len(days))}

	for i, day := range days {
		cell := Cell{Date: header[i].Date, IsToday: header[i].IsToday, IsWeekend: header[i].IsWeekend}

		if booking, found := occupant(room.ID, day, bookings); found {
			cell.IsStart = header[i].Date == booking.StartDate
			cell.Stay = stay(booking, staff, cell.IsStart)
		}

		row.Cells[i] = cell
	}

	return row
}

func occupant(roomID string, day time.Time, bookings []bookingModel.Booking) (bookingModel.Booking, bool) {
	for _, booking := range bookings {
		if booking.RoomID == roomID && booking.Covers(day) {
			return booking, true
		}
	}

	return bookingModel.Booking{}, false
}

func stay(booking bookingModel.Booking, staff map[string]staffModel.Staff, isStart bool) *Stay {
	member, known := staff[booking.StaffID]

	s := &Stay{
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		Nights:      booking.Nights(),
		StaffID:     booking.StaffID,
		Color:       staffModel.PaletteOf(staffModel.DefaultPalette),
		HasTransfer: booking.HasTransfer,
		Transfer:    booking.Transfer,
	}

	if known {
		s.StaffName = member.Name
		s.Color = member.Colors()
	}

	if isStart {
		if fields := strings.Fields(booking.GuestName); len(fields) > 0 {
			s.FirstName = fields[0]
		}
	}

	return s
}

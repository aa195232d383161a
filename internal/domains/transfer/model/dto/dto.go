package dto

import (
	"fmt"
	"strings"

	"atoll/internal/domains/transfer/model"
	"atoll/shared"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"
	gModel "atoll/shared/model"
	"atoll/shared/timezone"

	"github.com/google/uuid"
)

type AssignTransferRequest struct {
	StaffID    string `json:"staff_id"    validate:"required"`
	PIN        string `json:"pin"         validate:"required"`
	BookingID  string `json:"booking_id"`
	GuestName  string `json:"guest_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	HasReturn  bool   `json:"has_return"`
	ReturnDate string `json:"return_date"`
	ReturnTime string `json:"return_time"`
	Route      string `json:"route"`
	Seats      int    `json:"seats"       validate:"gte=0,lte=50"`
	Status     string `json:"status"`
}

// Normalize applies defaults and snaps times onto the schedule for the selected date.
// It returns a note for every value it had to change.
func (r *AssignTransferRequest) Normalize() (corrections []string) {
	r.GuestName = strings.TrimSpace(r.GuestName)

	if r.Seats < 1 {
		r.Seats = 1
	}

	if r.Status == constant.Empty {
		r.Status = string(model.StatusPending)
	}

	if corrected, changed := model.CorrectTime(r.Time, model.DepartureOptions(r.Date)); changed {
		corrections = append(corrections, fmt.Sprintf("time %q is not scheduled on %s, using %s", r.Time, r.Date, corrected))
		r.Time = corrected
	}

	if !r.HasReturn {
		r.ReturnDate = constant.Empty
		r.ReturnTime = constant.Empty

		return corrections
	}

	if r.ReturnDate == constant.Empty {
		r.ReturnDate = r.Date
	}

	if corrected, changed := model.CorrectTime(r.ReturnTime, model.ReturnOptions()); changed {
		corrections = append(corrections, fmt.Sprintf("return time %q is not scheduled, using %s", r.ReturnTime, corrected))
		r.ReturnTime = corrected
	}

	return corrections
}

// Validate checks a normalized request.
func (r *AssignTransferRequest) Validate() error {
	if r.GuestName == constant.Empty || r.Date == constant.Empty || r.Time == constant.Empty {
		return failure.BadRequestFromString(constant.ResponseErrorRequiredFields) // nolint:wrapcheck
	}

	if _, err := calendar.ParseDate(r.Date); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if !model.ValidRoute(r.Route) {
		return failure.BadRequestFromString(fmt.Sprintf("route must be one of: %s", strings.Join(model.Routes, ", "))) // nolint:wrapcheck
	}

	if !model.Status(r.Status).Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown transfer status %q", r.Status)) // nolint:wrapcheck
	}

	if r.HasReturn {
		if _, err := calendar.ParseDate(r.ReturnDate); err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if calendar.Compare(r.ReturnDate, r.Date) < 0 {
			return failure.BadRequestFromString("return date must not be before the transfer date") // nolint:wrapcheck
		}
	}

	return nil
}

func (r *AssignTransferRequest) ToModel(actor string) model.SpeedboatBooking {
	return model.SpeedboatBooking{
		ID:         uuid.NewString(),
		BookingID:  r.BookingID,
		GuestName:  r.GuestName,
		Date:       r.Date,
		Time:       r.Time,
		ReturnDate: r.ReturnDate,
		ReturnTime: r.ReturnTime,
		Route:      r.Route,
		Seats:      r.Seats,
		Status:     model.Status(r.Status),
		StaffID:    r.StaffID,
		Metadata:   gModel.NewMetadata(actor, timezone.Now()),
	}
}

// Redacted is the request as echoed back on failure.
func (r AssignTransferRequest) Redacted() AssignTransferRequest {
	r.PIN = constant.Empty

	return r
}

type TransferResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id,omitempty"`
	GuestName  string `json:"guest_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	ReturnDate string `json:"return_date,omitempty"`
	ReturnTime string `json:"return_time,omitempty"`
	Route      string `json:"route"`
	Seats      int    `json:"seats"`
	Status     string `json:"status"`
	StaffID    string `json:"staff_id"`
	gDto.Metadata
}

func (r *TransferResponse) FromModel(model model.SpeedboatBooking) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestName = model.GuestName
	r.Date = model.Date
	r.Time = model.Time
	r.ReturnDate = model.ReturnDate
	r.ReturnTime = model.ReturnTime
	r.Route = model.Route
	r.Seats = model.Seats
	r.Status = string(model.Status)
	r.StaffID = model.StaffID
	r.Metadata.FromModel(model.Metadata)
}

type AssignTransferResponse struct {
	Transfer    TransferResponse `json:"transfer"`
	Corrections []string         `json:"corrections"`
}

type GetTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetTransfersResponse) FromModels(models []model.SpeedboatBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transfers = make([]TransferResponse, len(models))
	for i, mod := range models {
		r.Transfers[i].FromModel(mod)
	}
}

type OptionsResponse struct {
	Date             string   `json:"date"`
	Weekday          string   `json:"weekday"`
	Departures       []string `json:"departures"`
	Returns          []string `json:"returns"`
	Routes           []string `json:"routes"`
	DefaultDeparture string   `json:"default_departure"`
	DefaultReturn    string   `json:"default_return"`
}

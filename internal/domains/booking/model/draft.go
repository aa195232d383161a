package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	"atoll/shared/model"

	"github.com/google/uuid"
)

type State string

const (
	StateDraft     State = "Draft"
	StateCommitted State = "Committed"
)

var (
	ErrRequiredFields = errors.New(constant.ResponseErrorRequiredFields)
	ErrEmptyStay      = errors.New("check-out must be at least one night after check-in")
	ErrTransferTime   = errors.New("transfer time is not on the schedule")
	ErrTransferStatus = errors.New("unknown transfer status")
)

// Draft is a booking being filled in. Dates and duration stay coupled: changing a date recomputes the
// duration and changing the duration moves the check-out date.
type Draft struct {
	State          State                `json:"state"`
	GuestName      string               `json:"guest_name"`
	RoomIDs        []string             `json:"room_ids"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	Duration       int                  `json:"duration"`
	StaffID        string               `json:"staff_id"`
	Notes          string               `json:"notes"`
	HasTransfer    bool                 `json:"has_transfer"`
	TransferTime   string               `json:"transfer_time"`
	HasReturn      bool                 `json:"has_return"`
	ReturnTime     string               `json:"return_time"`
	TransferStatus transferModel.Status `json:"transfer_status"`
	Corrections    []string             `json:"corrections,omitempty"`
	Warnings       []string             `json:"warnings,omitempty"`
	Error          string               `json:"error,omitempty"`
}

func NewDraft() Draft {
	return Draft{
		State:          StateDraft,
		RoomIDs:        []string{},
		Duration:       1,
		TransferTime:   transferModel.DefaultDeparture,
		ReturnTime:     transferModel.DefaultReturn,
		TransferStatus: transferModel.StatusPending,
	}
}

func (d *Draft) SetRooms(ids []string) {
	d.RoomIDs = make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != constant.Empty && !slices.Contains(d.RoomIDs, id) {
			d.RoomIDs = append(d.RoomIDs, id)
		}
	}
}

func (d *Draft) SetStartDate(date string) {
	d.StartDate = date
	d.syncDuration()
	d.correctTimes()
}

func (d *Draft) SetEndDate(date string) {
	d.EndDate = date
	d.syncDuration()
}

// SetDuration moves the check-out date. Durations below one night are clamped to one.
func (d *Draft) SetDuration(nights int) {
	d.Duration = max(nights, 1)

	if end, err := calendar.AddDays(d.StartDate, d.Duration); err == nil {
		d.EndDate = end
	}
}

// DepartureOptions are the transfer times available on the check-in date.
func (d *Draft) DepartureOptions() []string {
	return transferModel.DepartureOptions(d.StartDate)
}

func (d *Draft) syncDuration() {
	if nights, err := calendar.Nights(d.StartDate, d.EndDate); err == nil && nights >= 1 {
		d.Duration = nights
	}
}

func (d *Draft) correctTimes() {
	if corrected, changed := transferModel.CorrectTime(d.TransferTime, d.DepartureOptions()); changed {
		if d.HasTransfer {
			d.Corrections = append(d.Corrections,
				fmt.Sprintf("transfer time %s is not available on %s, using %s", d.TransferTime, d.StartDate, corrected))
		}

		d.TransferTime = corrected
	}

	if corrected, changed := transferModel.CorrectTime(d.ReturnTime, transferModel.ReturnOptions()); changed {
		if d.HasTransfer && d.HasReturn {
			d.Corrections = append(d.Corrections,
				fmt.Sprintf("return time %s is not available, using %s", d.ReturnTime, corrected))
		}

		d.ReturnTime = corrected
	}
}

// Validate checks the draft on its own. Room existence and the PIN are checked by the caller.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.GuestName) == constant.Empty || d.StartDate == constant.Empty ||
		d.EndDate == constant.Empty || len(d.RoomIDs) == 0 {
		return ErrRequiredFields
	}

	nights, err := calendar.Nights(d.StartDate, d.EndDate)
	if err != nil {
		return err
	}

	if nights < 1 {
		return ErrEmptyStay
	}

	if !d.HasTransfer {
		return nil
	}

	if !d.TransferStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrTransferStatus, d.TransferStatus)
	}

	if !slices.Contains(d.DepartureOptions(), d.TransferTime) {
		return fmt.Errorf("%w: %s on %s", ErrTransferTime, d.TransferTime, d.StartDate)
	}

	if d.HasReturn && !slices.Contains(transferModel.ReturnOptions(), d.ReturnTime) {
		return fmt.Errorf("%w: return %s", ErrTransferTime, d.ReturnTime)
	}

	return nil
}

// Reject keeps the draft editable and records why it was not committed.
func (d *Draft) Reject(reason string) {
	d.State = StateDraft
	d.Error = reason
}

func (d *Draft) Commit() {
	d.State = StateCommitted
	d.Error = constant.Empty
}

// Bookings expands the draft into one Booking per room, each with its own id.
func (d *Draft) Bookings(actor string, at time.Time) []Booking {
	bookings := make([]Booking, 0, len(d.RoomIDs))

	for _, roomID := range d.RoomIDs {
		booking := Booking{
			ID:          uuid.NewString(),
			RoomID:      roomID,
			GuestName:   strings.TrimSpace(d.GuestName),
			StartDate:   d.StartDate,
			EndDate:     d.EndDate,
			StaffID:     d.StaffID,
			Notes:       strings.TrimSpace(d.Notes),
			HasTransfer: d.HasTransfer,
			Metadata:    model.NewMetadata(actor, at),
		}

		if d.HasTransfer {
			booking.Transfer = &Transfer{
				Time:   d.TransferTime,
				Status: d.TransferStatus,
			}

			if d.HasReturn {
				booking.Transfer.ReturnTime = d.ReturnTime
			}
		}

		bookings = append(bookings, booking)
	}

	return bookings
}

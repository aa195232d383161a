package dto

import (
	"atoll/internal/domains/booking/model"
	transferModel "atoll/internal/domains/transfer/model"
	"atoll/shared"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
)

// DraftRequest is the intake form. Dates are applied before the duration, so an explicit duration
// decides the check-out date.
type DraftRequest struct {
	GuestName      string   `json:"guest_name"      validate:"max=120"`
	RoomIDs        []string `json:"room_ids"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Duration       int      `json:"duration"        validate:"lte=365"`
	StaffID        string   `json:"staff_id"`
	Notes          string   `json:"notes"           validate:"max=500"`
	HasTransfer    bool     `json:"has_transfer"`
	TransferTime   string   `json:"transfer_time"`
	HasReturn      bool     `json:"has_return"`
	ReturnTime     string   `json:"return_time"`
	TransferStatus string   `json:"transfer_status"`
}

func (r *DraftRequest) ToDraft() model.Draft {
	draft := model.NewDraft()

	draft.GuestName = r.GuestName
	draft.StaffID = r.StaffID
	draft.Notes = r.Notes
	draft.HasTransfer = r.HasTransfer
	draft.HasReturn = r.HasReturn
	draft.SetRooms(r.RoomIDs)

	if r.TransferTime != constant.Empty {
		draft.TransferTime = r.TransferTime
	}

	if r.ReturnTime != constant.Empty {
		draft.ReturnTime = r.ReturnTime
	}

	if r.TransferStatus != constant.Empty {
		draft.TransferStatus = transferModel.Status(r.TransferStatus)
	}

	if r.StartDate != constant.Empty {
		draft.SetStartDate(r.StartDate)
	}

	if r.EndDate != constant.Empty {
		draft.SetEndDate(r.EndDate)
	}

	if r.Duration != 0 || (r.EndDate == constant.Empty && r.StartDate != constant.Empty) {
		draft.SetDuration(r.Duration)
	}

	return draft
}

type CreateBookingRequest struct {
	DraftRequest
	PIN string `json:"pin"`
}

type TransferResponse struct {
	Time       string `json:"time"`
	ReturnTime string `json:"return_time,omitempty"`
	Status     string `json:"status"`
}

type BookingResponse struct {
	ID          string            `json:"id"`
	RoomID      string            `json:"room_id"`
	GuestName   string            `json:"guest_name"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Nights      int               `json:"nights"`
	StaffID     string            `json:"staff_id"`
	Notes       string            `json:"notes,omitempty"`
	HasTransfer bool              `json:"has_transfer"`
	Transfer    *TransferResponse `json:"transfer,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.StartDate = model.StartDate
	r.EndDate = model.EndDate
	r.Nights = model.Nights()
	r.StaffID = model.StaffID
	r.Notes = model.Notes
	r.HasTransfer = model.HasTransfer
	r.Transfer = nil

	if model.Transfer != nil {
		r.Transfer = &TransferResponse{
			Time:       model.Transfer.Time,
			ReturnTime: model.Transfer.ReturnTime,
			Status:     string(model.Transfer.Status),
		}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type DraftResponse struct {
	Draft            model.Draft `json:"draft"`
	Valid            bool        `json:"valid"`
	DepartureOptions []string    `json:"departure_options"`
	ReturnOptions    []string    `json:"return_options"`
}

type CreateBookingResponse struct {
	State    model.State       `json:"state"`
	Bookings []BookingResponse `json:"bookings"`
	Draft    model.Draft       `json:"draft"`
}

func (r *CreateBookingResponse) FromModels(draft model.Draft, models []model.Booking) {
	r.State = draft.State
	r.Draft = draft
	r.Bookings = make([]BookingResponse, len(models))

	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingQuery narrows GET /bookings. Date keeps bookings whose stay covers it.
type BookingQuery struct {
	RoomID  string
	StaffID string
	Date    string
}

func (q BookingQuery) Filter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if q.RoomID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: q.RoomID})
	}

	if q.StaffID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStaffID, Operator: gDto.FilterOperatorEq, Value: q.StaffID})
	}

	if q.Date != constant.Empty {
		filter.Filters = append(filter.Filters,
			gDto.Filter{Field: model.FieldStartDate, Operator: gDto.FilterOperatorLessEq, Value: q.Date},
			gDto.Filter{Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreaterEq, Value: q.Date},
		)
	}

	return filter
}

// Key identifies the query in cache keys.
func (q BookingQuery) Key() string {
	return "room=" + q.RoomID + ",staff=" + q.StaffID + ",date=" + q.Date
}

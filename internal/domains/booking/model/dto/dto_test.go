package dto_test

import (
	"encoding/json"
	"testing"

	"atoll/internal/domains/booking/model"
	"atoll/internal/domains/booking/model/dto"
	transferModel "atoll/internal/domains/transfer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRequest_ToDraft(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.DraftRequest
		wantEnd      string
		wantDuration int
	}{
		{
			name:         "both dates",
			req:          dto.DraftRequest{StartDate: "2024-06-03", EndDate: "2024-06-08"},
			wantEnd:      "2024-06-08",
			wantDuration: 5,
		},
		{
			name:         "start only defaults to one night",
			req:          dto.DraftRequest{StartDate: "2024-06-03"},
			wantEnd:      "2024-06-04",
			wantDuration: 1,
		},
		{
			name:         "duration wins over end date",
			req:          dto.DraftRequest{StartDate: "2024-06-03", EndDate: "2024-06-08", Duration: 2},
			wantEnd:      "2024-06-05",
			wantDuration: 2,
		},
		{
			name:         "negative duration is clamped",
			req:          dto.DraftRequest{StartDate: "2024-06-03", EndDate: "2024-06-08", Duration: -1},
			wantEnd:      "2024-06-04",
			wantDuration: 1,
		},
		{
			name:         "no dates",
			req:          dto.DraftRequest{},
			wantEnd:      "",
			wantDuration: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := tt.req.ToDraft()

			assert.Equal(t, tt.wantEnd, draft.EndDate)
			assert.Equal(t, tt.wantDuration, draft.Duration)
			assert.Equal(t, model.StateDraft, draft.State)
		})
	}
}

func TestDraftRequest_ToDraftTransfer(t *testing.T) {
	req := dto.DraftRequest{
		GuestName:      "Aisha",
		RoomIDs:        []string{"r101", "r101", "r102"},
		StartDate:      "2024-06-07",
		HasTransfer:    true,
		TransferTime:   "10:45",
		TransferStatus: "Confirmed",
	}

	draft := req.ToDraft()

	assert.Equal(t, []string{"r101", "r102"}, draft.RoomIDs)
	assert.Equal(t, "09:45", draft.TransferTime)
	assert.Equal(t, transferModel.StatusConfirmed, draft.TransferStatus)
	assert.NotEmpty(t, draft.Corrections)
	assert.NoError(t, draft.Validate())
}

func TestCreateBookingRequest_DecodesFlat(t *testing.T) {
	var req dto.CreateBookingRequest

	err := json.Unmarshal([]byte(`{"guest_name":"Aisha","room_ids":["r101"],"start_date":"2024-06-03","pin":"1234"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Aisha", req.GuestName)
	assert.Equal(t, "1234", req.PIN)
}

func TestBookingResponse_FromModel(t *testing.T) {
	var res dto.BookingResponse

	res.FromModel(model.Booking{
		ID:          "b1",
		RoomID:      "r101",
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-06",
		HasTransfer: true,
		Transfer:    &model.Transfer{Time: "16:00", Status: transferModel.StatusArrived},
	})

	assert.Equal(t, 3, res.Nights)
	require.NotNil(t, res.Transfer)
	assert.Equal(t, "Arrived", res.Transfer.Status)

	res.FromModel(model.Booking{ID: "b2"})
	assert.Nil(t, res.Transfer)
}

func TestBookingQuery_Filter(t *testing.T) {
	row := map[string]any{
		"room_id":    "r101",
		"staff_id":   "s1",
		"start_date": "2024-06-03",
		"end_date":   "2024-06-06",
	}

	tests := []struct {
		name  string
		query dto.BookingQuery
		want  bool
	}{
		{name: "empty", query: dto.BookingQuery{}, want: true},
		{name: "room", query: dto.BookingQuery{RoomID: "r101"}, want: true},
		{name: "other staff", query: dto.BookingQuery{StaffID: "s2"}, want: false},
		{name: "check-out day is covered", query: dto.BookingQuery{Date: "2024-06-06"}, want: true},
		{name: "day before", query: dto.BookingQuery{Date: "2024-06-02"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.query.Filter()
			assert.Equal(t, tt.want, filter.Match(row))
		})
	}
}

package dto_test

import (
	"net/http"
	"testing"

	"atoll/internal/domains/transfer/model"
	"atoll/internal/domains/transfer/model/dto"
	"atoll/shared/constant"
	"atoll/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.AssignTransferRequest {
	return dto.AssignTransferRequest{
		StaffID:   "s1",
		PIN:       "1234",
		GuestName: "  Hana Ali ",
		Date:      "2024-06-06",
		Time:      "16:00",
		Route:     model.RouteMaleToDhangethi,
	}
}

func TestAssignTransferRequest_NormalizeDefaults(t *testing.T) {
	req := validRequest()

	corrections := req.Normalize()

	assert.Empty(t, corrections)
	assert.Equal(t, "Hana Ali", req.GuestName)
	assert.Equal(t, 1, req.Seats)
	assert.Equal(t, "Pending", req.Status)
	assert.Empty(t, req.ReturnDate)
	require.NoError(t, req.Validate())
}

func TestAssignTransferRequest_NormalizeCorrectsTimes(t *testing.T) {
	req := validRequest()
	req.Date = "2024-06-07"
	req.Time = "10:45"
	req.HasReturn = true
	req.ReturnTime = "09:00"

	corrections := req.Normalize()

	assert.Len(t, corrections, 2)
	assert.Equal(t, "09:45", req.Time)
	assert.Equal(t, "2024-06-07", req.ReturnDate)
	assert.Equal(t, "07:00", req.ReturnTime)
	require.NoError(t, req.Validate())
}

func TestAssignTransferRequest_NormalizeDropsReturnLeg(t *testing.T) {
	req := validRequest()
	req.ReturnDate = "2024-06-09"
	req.ReturnTime = "14:00"

	req.Normalize()

	assert.Empty(t, req.ReturnDate)
	assert.Empty(t, req.ReturnTime)
	assert.False(t, req.ToModel("s1").HasReturn())
}

func TestAssignTransferRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.AssignTransferRequest)
		wantMsg string
	}{
		{name: "blank guest", mutate: func(r *dto.AssignTransferRequest) { r.GuestName = "   " }, wantMsg: constant.ResponseErrorRequiredFields},
		{name: "no date", mutate: func(r *dto.AssignTransferRequest) { r.Date = "" }, wantMsg: constant.ResponseErrorRequiredFields},
		{name: "bad date", mutate: func(r *dto.AssignTransferRequest) { r.Date = "2024-13-01" }},
		{name: "bad route", mutate: func(r *dto.AssignTransferRequest) { r.Route = "Male to Airport" }},
		{name: "bad status", mutate: func(r *dto.AssignTransferRequest) { r.Status = "Sunk" }},
		{name: "return before departure", mutate: func(r *dto.AssignTransferRequest) {
			r.HasReturn = true
			r.ReturnDate = "2024-06-01"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			req.Normalize()

			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestAssignTransferRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.Seats = 3
	req.Normalize()

	first := req.ToModel("s1")
	second := req.ToModel("s1")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 3, first.Seats)
	assert.Equal(t, model.StatusPending, first.Status)
	assert.Equal(t, "s1", first.CreatedBy)
	assert.Empty(t, req.Redacted().PIN)
	assert.Equal(t, "1234", req.PIN)
}

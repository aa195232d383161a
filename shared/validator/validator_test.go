package validator_test

import (
	"strings"
	"testing"

	"atoll/shared/failure"
	"atoll/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	GuestName string   `json:"guestName" validate:"required"`
	RoomIDs   []string `json:"roomIds" validate:"required,min=1"`
	StartDate string   `json:"startDate" validate:"required,date"`
	Duration  int      `json:"duration" validate:"gte=0,lte=365"`
	Time      string   `json:"transferTime" validate:"omitempty,clock"`
	Pin       string   `json:"pin" validate:"required,pin"`
}

func validRequest() bookingRequest {
	return bookingRequest{
		GuestName: "Aisha Rahman",
		RoomIDs:   []string{"r1"},
		StartDate: "2024-06-01",
		Duration:  3,
		Time:      "10:45",
		Pin:       "1234",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *bookingRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(_ *bookingRequest) {}},
		{name: "missing guest", mutate: func(r *bookingRequest) { r.GuestName = "" }, wantMsg: "guestName is required"},
		{name: "no rooms", mutate: func(r *bookingRequest) { r.RoomIDs = []string{} }, wantMsg: "roomIds must be greater than or equal to 1"},
		{name: "bad date", mutate: func(r *bookingRequest) { r.StartDate = "2024-02-30" }, wantMsg: "startDate must be a date in YYYY-MM-DD format"},
		{name: "loose date", mutate: func(r *bookingRequest) { r.StartDate = "2024-6-1" }, wantMsg: "startDate must be a date in YYYY-MM-DD format"},
		{name: "bad clock", mutate: func(r *bookingRequest) { r.Time = "25:00" }, wantMsg: "transferTime must be a time in HH:MM format"},
		{name: "short clock", mutate: func(r *bookingRequest) { r.Time = "9:45" }, wantMsg: "transferTime must be a time in HH:MM format"},
		{name: "empty optional clock", mutate: func(r *bookingRequest) { r.Time = "" }},
		{name: "pin letters", mutate: func(r *bookingRequest) { r.Pin = "12a4" }, wantMsg: "pin must be a 4 digit PIN"},
		{name: "pin too long", mutate: func(r *bookingRequest) { r.Pin = "12345" }, wantMsg: "pin must be a 4 digit PIN"},
		{name: "duration too long", mutate: func(r *bookingRequest) { r.Duration = 400 }, wantMsg: "duration must be less than or equal to 365"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "month", field: "2024-06", tag: "month"},
		{name: "month with day", field: "2024-06-01", tag: "month", wantErr: true},
		{name: "month thirteen", field: "2024-13", tag: "month", wantErr: true},
		{name: "date", field: "2024-02-29", tag: "date"},
		{name: "not a leap year", field: "2023-02-29", tag: "date", wantErr: true},
		{name: "empty", field: "", tag: "empty"},
		{name: "not empty", field: "x", tag: "empty", wantErr: true},
		{name: "oneof", field: "Ready", tag: "oneof=Ready Occupied"},
		{name: "not oneof", field: "Gone", tag: "oneof=Ready Occupied", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"guestName":"Aisha","roomIds":["r1"],"startDate":"2024-06-01","pin":"1234"}`},
		{name: "invalid field", body: `{"guestName":"Aisha","roomIds":["r1"],"startDate":"June","pin":"1234"}`, wantErr: true},
		{name: "malformed", body: `{"guestName":`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req bookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

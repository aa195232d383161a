package model_test

import (
	"testing"

	"atoll/internal/domains/transfer/model"

	"github.com/stretchr/testify/assert"
)

func TestDepartureOptions(t *testing.T) {
	tests := []struct {
		name string
		date string
		want []string
	}{
		{name: "friday", date: "2024-06-07", want: []string{"09:45", "16:00"}},
		{name: "thursday", date: "2024-06-06", want: []string{"10:45", "16:00"}},
		{name: "saturday", date: "2024-06-08", want: []string{"10:45", "16:00"}},
		{name: "invalid", date: "soon", want: []string{"10:45", "16:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DepartureOptions(tt.date))
		})
	}
}

func TestOptionsAreCopies(t *testing.T) {
	options := model.DepartureOptions("2024-06-07")
	options[0] = "00:00"

	assert.Equal(t, "09:45", model.DepartureOptions("2024-06-07")[0])

	returns := model.ReturnOptions()
	returns[0] = "00:00"

	assert.Equal(t, []string{"07:00", "14:00"}, model.ReturnOptions())
}

func TestCorrectTime(t *testing.T) {
	got, changed := model.CorrectTime("16:00", model.DepartureOptions("2024-06-07"))
	assert.Equal(t, "16:00", got)
	assert.False(t, changed)

	got, changed = model.CorrectTime("10:45", model.DepartureOptions("2024-06-07"))
	assert.Equal(t, "09:45", got)
	assert.True(t, changed)

	got, changed = model.CorrectTime("", model.ReturnOptions())
	assert.Equal(t, "07:00", got)
	assert.True(t, changed)
}

func TestStatusAndRoute(t *testing.T) {
	assert.True(t, model.StatusDeparted.Valid())
	assert.False(t, model.Status("Sunk").Valid())
	assert.True(t, model.ValidRoute("Airport to Dhangethi"))
	assert.False(t, model.ValidRoute("Male to Airport"))
	assert.True(t, model.SpeedboatBooking{ReturnTime: "14:00"}.HasReturn())
}

package model_test

import (
	"testing"

	"atoll/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from model.Status
		want model.Status
	}{
		{from: model.StatusReady, want: model.StatusOccupied},
		{from: model.StatusOccupied, want: model.StatusCleaning},
		{from: model.StatusCleaning, want: model.StatusOutOfOrder},
		{from: model.StatusOutOfOrder, want: model.StatusReady},
		{from: model.Status("Painting"), want: model.StatusReady},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestStatus_CycleReturnsToStart(t *testing.T) {
	status := model.StatusCleaning
	for range 4 {
		status = status.Next()
	}

	assert.Equal(t, model.StatusCleaning, status)
}

func TestValid(t *testing.T) {
	assert.True(t, model.StatusOutOfOrder.Valid())
	assert.False(t, model.Status("ready").Valid())
	assert.True(t, model.TypeDouble.Valid())
	assert.False(t, model.Type("Suite").Valid())
}

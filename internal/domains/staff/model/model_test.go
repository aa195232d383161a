package model_test

import (
	"testing"

	"atoll/internal/domains/staff/model"

	"github.com/stretchr/testify/assert"
)

func TestPaletteOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "indigo", want: "#4f46e5"},
		{name: "rose", want: "#e11d48"},
		{name: "", want: "#0d9488"},
		{name: "plum", want: "#0d9488"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.PaletteOf(tt.name).Solid)
		})
	}
}

func TestStaff_Colors(t *testing.T) {
	staff := model.Staff{ID: "s1", Palette: "amber"}

	assert.Equal(t, model.Palette{Name: "amber", Base: "#f59e0b", Solid: "#d97706", Light: "#fef3c7"}, staff.Colors())
}

package model

import (
	"atoll/shared/model"
)

const (
	EntityName = "staff"

	FieldID   = "id"
	FieldName = "name"
)

// Staff is a team member who can record bookings and transfers. PIN holds either the plain
// four-digit PIN or its bcrypt hash.
type Staff struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	PIN     string `db:"pin"`
	Palette string `db:"palette"`
	model.Metadata
}

func (s Staff) Colors() Palette {
	return PaletteOf(s.Palette)
}

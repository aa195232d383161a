package model

import "atoll/shared/model"

const (
	EntityName = "room"

	FieldID     = "id"
	FieldName   = "name"
	FieldType   = "type"
	FieldStatus = "status"
)

type Type string

const (
	TypeTwin   Type = "Twin Room"
	TypeDouble Type = "Double Bed"
)

// Types lists room types in the order their sections are displayed.
var Types = []Type{TypeTwin, TypeDouble}

func (t Type) Valid() bool {
	return t == TypeTwin || t == TypeDouble
}

type Status string

const (
	StatusReady      Status = "Ready"
	StatusOccupied   Status = "Occupied"
	StatusCleaning   Status = "Cleaning"
	StatusOutOfOrder Status = "Out of Order"
)

var transitions = map[Status]Status{
	StatusReady:      StatusOccupied,
	StatusOccupied:   StatusCleaning,
	StatusCleaning:   StatusOutOfOrder,
	StatusOutOfOrder: StatusReady,
}

// Next is the status a manual toggle moves to. Unknown statuses reset to Ready.
func (s Status) Next() Status {
	if next, ok := transitions[s]; ok {
		return next
	}

	return StatusReady
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

type Room struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Type   Type   `db:"type"`
	Status Status `db:"status"`
	model.Metadata
}

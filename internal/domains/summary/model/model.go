package model

import (
	"encoding/json"
	"fmt"

	bookingModel "atoll/internal/domains/booking/model"
	roomModel "atoll/internal/domains/room/model"
	transferModel "atoll/internal/domains/transfer/model"
)

const (
	Placeholder   = "Loading smart status..."
	NotConfigured = "AI Summary unavailable (API Key not set)."
	Failed        = "Failed to fetch smart summary."
	Empty         = "No summary available."
)

type RoomSnapshot struct {
	Name   string           `json:"name"`
	Status roomModel.Status `json:"status"`
}

type BookingSnapshot struct {
	Guest          string               `json:"guest"`
	Start          string               `json:"start"`
	HasTransfer    bool                 `json:"hasTransfer"`
	TransferTime   string               `json:"transferTime,omitempty"`
	TransferStatus transferModel.Status `json:"transferStatus,omitempty"`
}

// Snapshot is the hotel state the summary is written from.
type Snapshot struct {
	Rooms    []RoomSnapshot    `json:"rooms"`
	Bookings []BookingSnapshot `json:"bookings"`
}

func NewSnapshot(rooms []roomModel.Room, bookings []bookingModel.Booking) Snapshot {
	snapshot := Snapshot{
		Rooms:    make([]RoomSnapshot, len(rooms)),
		Bookings: make([]BookingSnapshot, len(bookings)),
	}

	for i, room := range rooms {
		snapshot.Rooms[i] = RoomSnapshot{Name: room.Name, Status: room.Status}
	}

	for i, booking := range bookings {
		snapshot.Bookings[i] = BookingSnapshot{
			Guest:        booking.GuestName,
			Start:        booking.StartDate,
			HasTransfer:  booking.HasTransfer,
			TransferTime: booking.TransferTime(),
		}

		if booking.Transfer != nil {
			snapshot.Bookings[i].TransferStatus = booking.Transfer.Status
		}
	}

	return snapshot
}

const promptTemplate = `You are a hotel management assistant at Dhangethi Atoll.
Analyze the current status and provide a professional 2-sentence summary.
Highlight if any upcoming guest check-ins are missing speedboat transfer bookings or if there are multiple transfers today.
Rooms: %s
Bookings: %s`

func (s Snapshot) Prompt() (string, error) {
	rooms, err := json.Marshal(s.Rooms)
	if err != nil {
		return "", fmt.Errorf("failed to encode rooms: %w", err)
	}

	bookings, err := json.Marshal(s.Bookings)
	if err != nil {
		return "", fmt.Errorf("failed to encode bookings: %w", err)
	}

	return fmt.Sprintf(promptTemplate, rooms, bookings), nil
}

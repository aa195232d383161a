package dto

import (
	"atoll/internal/domains/logistics/model"
)

type FeedResponse struct {
	Entries []model.Entry `json:"entries"`
	Total   int           `json:"total"`
}

type DayResponse struct {
	Date    string        `json:"date"`
	Entries []model.Entry `json:"entries"`
}

// Manifest is the document uploaded for a day.
type Manifest struct {
	Date        string        `json:"date"`
	GeneratedAt string        `json:"generated_at"`
	GeneratedBy string        `json:"generated_by"`
	Seats       int           `json:"seats"`
	Entries     []model.Entry `json:"entries"`
}

// CountSeats counts one seat per booking transfer and the booked seats of each speedboat booking.
func (m *Manifest) CountSeats() {
	m.Seats = 0

	for _, entry := range m.Entries {
		m.Seats += max(entry.Seats, 1)
	}
}

type ManifestResponse struct {
	Date    string `json:"date"`
	URL     string `json:"url"`
	Entries int    `json:"entries"`
}

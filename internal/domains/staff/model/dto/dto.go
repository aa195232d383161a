package dto

import (
	"atoll/internal/domains/staff/model"
)

// StaffResponse never carries the PIN.
type StaffResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Palette      model.Palette `json:"palette"`
	BookingCount int           `json:"booking_count"`
}

func (r *StaffResponse) FromModel(model model.Staff, bookingCount int) {
	r.ID = model.ID
	r.Name = model.Name
	r.Palette = model.Colors()
	r.BookingCount = bookingCount
}

type GetStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromModels pairs each staff member with counts[staff.ID].
func (r *GetStaffResponse) FromModels(models []model.Staff, counts map[string]int) {
	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod, counts[mod.ID])
	}
}

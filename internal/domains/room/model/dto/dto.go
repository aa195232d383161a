package dto

import (
	"atoll/internal/domains/room/model"
	"atoll/shared"
	gDto "atoll/shared/dto"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	NextStatus string `json:"next_status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = string(model.Type)
	r.Status = string(model.Status)
	r.NextStatus = string(model.Status.Next())
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// StatusUpdate is the stored change applied by a status toggle or set.
type StatusUpdate struct {
	Status model.Status `db:"status"`
}

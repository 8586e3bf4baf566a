package dto

import (
	"time"

	"hallbook/internal/domains/component/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=operational faulty maintenance"`
	Notes  string `json:"notes"  validate:"omitempty,max=500"`
}

type ComponentResponse struct {
	ID              string     `json:"id"`
	HallID          string     `json:"hall_id"`
	HallName        string     `json:"hall_name,omitempty"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Location        string     `json:"location"`
	Notes           *string    `json:"notes,omitempty"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	gDto.Metadata
}

func (r *ComponentResponse) FromModel(model model.Component) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.HallName = model.HallName
	r.Name = model.Name
	r.Type = model.Type
	r.Status = model.Status.String()
	r.Location = model.Location
	r.Notes = model.Notes
	r.LastMaintenance = model.LastMaintenance
	r.Metadata.FromModel(model.Metadata)
}

type GetComponentsResponse struct {
	Components []ComponentResponse `json:"components"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetComponentsResponse) FromModels(models []model.Component, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Components = make([]ComponentResponse, len(models))
	for i, mod := range models {
		r.Components[i].FromModel(mod)
	}
}

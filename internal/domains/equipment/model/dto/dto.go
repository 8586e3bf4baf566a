package dto

import (
	"time"

	"hallbook/internal/domains/equipment/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
)

type UpdateConditionRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Condition   string `json:"condition"    validate:"required,oneof=active not_working under_repair"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

type EquipmentResponse struct {
	ID            string     `json:"id"`
	HallID        string     `json:"hall_id"`
	HallName      string     `json:"hall_name,omitempty"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	SerialNumber  string     `json:"serial_number"`
	Condition     string     `json:"condition"`
	LastUpdatedBy *string    `json:"last_updated_by,omitempty"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
	gDto.Metadata
}

func (r *EquipmentResponse) FromModel(model model.Equipment) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.HallName = model.HallName
	r.Name = model.Name
	r.Type = model.Type
	r.SerialNumber = model.SerialNumber
	r.Condition = model.Condition.String()
	r.LastUpdatedBy = model.LastUpdatedBy
	r.LastUpdatedAt = model.LastUpdatedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetEquipmentResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetEquipmentResponse) FromModels(models []model.Equipment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Equipment = make([]EquipmentResponse, len(models))
	for i, mod := range models {
		r.Equipment[i].FromModel(mod)
	}
}

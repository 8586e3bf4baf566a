package dto

import (
	bookingDto "hallbook/internal/domains/booking/model/dto"
	componentDto "hallbook/internal/domains/component/model/dto"
	equipmentDto "hallbook/internal/domains/equipment/model/dto"
	"hallbook/internal/domains/hall/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
)

type HallResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SeatingCapacity int     `json:"seating_capacity"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	ImageURL        *string `json:"image_url,omitempty"`
	DepartmentID    string  `json:"department_id"`
	DepartmentName  string  `json:"department_name,omitempty"`
	gDto.Metadata
}

func (r *HallResponse) FromModel(model model.SeminarHall) {
	r.ID = model.ID
	r.Name = model.Name
	r.SeatingCapacity = model.SeatingCapacity
	r.Location = model.Location
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.DepartmentID = model.DepartmentID
	r.Metadata.FromModel(model.Metadata)
}

type GetHallsResponse struct {
	Halls     []HallResponse `json:"halls"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetHallsResponse) FromModels(models []model.SeminarHall, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Halls = make([]HallResponse, len(models))
	for i, mod := range models {
		r.Halls[i].FromModel(mod)
	}
}

// HallDetailResponse bundles the hall with its equipment, components, and the
// most recent approved bookings.
type HallDetailResponse struct {
	HallResponse
	Equipment      []equipmentDto.EquipmentResponse `json:"equipment"`
	Components     []componentDto.ComponentResponse `json:"components"`
	RecentBookings []bookingDto.BookingResponse     `json:"recent_bookings"`
}

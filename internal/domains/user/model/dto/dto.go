package dto

import (
	"hallbook/internal/domains/user/model"
	gDto "hallbook/shared/dto"
)

type ProfileResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Role           string  `json:"role"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName string  `json:"department_name,omitempty"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(profile model.Profile) {
	r.ID = profile.ID
	r.UserID = profile.UserID
	r.Name = profile.Name
	r.Email = profile.Email
	r.Phone = profile.Phone
	r.Role = profile.Role.String()
	r.DepartmentID = profile.DepartmentID
	r.Metadata.FromModel(profile.Metadata)
}

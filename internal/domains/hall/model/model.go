package model

import (
	"hallbook/shared/model"
)

const (
	TableName  = "seminar_halls"
	EntityName = "seminar_hall"

	FieldID              = "id"
	FieldName            = "name"
	FieldSeatingCapacity = "seating_capacity"
	FieldLocation        = "location"
	FieldDescription     = "description"
	FieldImageURL        = "image_url"
	FieldDepartmentID    = "department_id"
)

const (
	DepartmentTableName  = "departments"
	DepartmentEntityName = "department"

	DepartmentFieldID          = "id"
	DepartmentFieldName        = "name"
	DepartmentFieldDescription = "description"
)

const (
	AssignmentTableName  = "hall_tech_staff"
	AssignmentEntityName = "hall_tech_staff"

	AssignmentFieldID          = "id"
	AssignmentFieldHallID      = "hall_id"
	AssignmentFieldTechStaffID = "tech_staff_id"
)

type SeminarHall struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	SeatingCapacity int     `db:"seating_capacity"`
	Location        string  `db:"location"`
	Description     string  `db:"description"`
	ImageURL        *string `db:"image_url"`
	DepartmentID    string  `db:"department_id"`
	model.Metadata
}

type Department struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}

// Assignment binds a tech staff profile to a hall it maintains.
type Assignment struct {
	ID          string `db:"id"`
	HallID      string `db:"hall_id"`
	TechStaffID string `db:"tech_staff_id"`
	model.Metadata
}

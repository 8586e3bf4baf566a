package model

import (
	"fmt"
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "hall_components"
	EntityName = "hall_component"

	FieldID              = "id"
	FieldHallID          = "hall_id"
	FieldName            = "name"
	FieldType            = "type"
	FieldStatus          = "status"
	FieldLocation        = "location"
	FieldNotes           = "notes"
	FieldLastMaintenance = "last_maintenance"
)

const (
	LogTableName  = "component_maintenance_logs"
	LogEntityName = "component_maintenance_log"

	LogFieldID             = "id"
	LogFieldComponentID    = "component_id"
	LogFieldAction         = "action"
	LogFieldPreviousStatus = "previous_status"
	LogFieldNewStatus      = "new_status"
	LogFieldNotes          = "notes"
	LogFieldPerformedBy    = "performed_by"
)

// Status is the closed set of component health states.
type Status string

const (
	StatusOperational Status = "operational"
	StatusFaulty      Status = "faulty"
	StatusMaintenance Status = "maintenance"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusOperational, StatusFaulty, StatusMaintenance:
		return Status(value), nil
	default:
		return "", fmt.Errorf("unknown component status %q", value)
	}
}

func (s Status) String() string {
	return string(s)
}

type Component struct {
	ID              string     `db:"id"`
	HallID          string     `db:"hall_id"`
	Name            string     `db:"name"`
	Type            string     `db:"type"`
	Status          Status     `db:"status"`
	Location        string     `db:"location"`
	Notes           *string    `db:"notes"`
	LastMaintenance *time.Time `db:"last_maintenance"`
	HallName        string     `db:"hall_name" table:"seminar_halls" column:"name"`
	model.Metadata
}

func (Component) GetJoinQuery() string {
	return "LEFT JOIN seminar_halls ON seminar_halls.id = hall_components.hall_id"
}

// Log rows are append-only maintenance history.
type Log struct {
	ID             string  `db:"id"`
	ComponentID    string  `db:"component_id"`
	Action         string  `db:"action"`
	PreviousStatus Status  `db:"previous_status"`
	NewStatus      Status  `db:"new_status"`
	Notes          *string `db:"notes"`
	PerformedBy    string  `db:"performed_by"`
	model.Metadata
}

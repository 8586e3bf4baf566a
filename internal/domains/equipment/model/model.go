package model

import (
	"fmt"
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "equipment"
	EntityName = "equipment"

	FieldID            = "id"
	FieldHallID        = "hall_id"
	FieldName          = "name"
	FieldType          = "type"
	FieldSerialNumber  = "serial_number"
	FieldCondition     = "condition"
	FieldLastUpdatedBy = "last_updated_by"
	FieldLastUpdatedAt = "last_updated_at"
)

const (
	LogTableName  = "equipment_logs"
	LogEntityName = "equipment_log"

	LogFieldID                = "id"
	LogFieldEquipmentID       = "equipment_id"
	LogFieldPreviousCondition = "previous_condition"
	LogFieldNewCondition      = "new_condition"
	LogFieldNotes             = "notes"
	LogFieldUpdatedBy         = "updated_by"
)

// Condition is the closed set of equipment conditions.
type Condition string

const (
	ConditionActive      Condition = "active"
	ConditionNotWorking  Condition = "not_working"
	ConditionUnderRepair Condition = "under_repair"
)

func ParseCondition(value string) (Condition, error) {
	switch Condition(value) {
	case ConditionActive, ConditionNotWorking, ConditionUnderRepair:
		return Condition(value), nil
	default:
		return "", fmt.Errorf("unknown equipment condition %q", value)
	}
}

func (c Condition) String() string {
	return string(c)
}

type Equipment struct {
	ID            string     `db:"id"`
	HallID        string     `db:"hall_id"`
	Name          string     `db:"name"`
	Type          string     `db:"type"`
	SerialNumber  string     `db:"serial_number"`
	Condition     Condition  `db:"condition"`
	LastUpdatedBy *string    `db:"last_updated_by"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
	HallName      string     `db:"hall_name" table:"seminar_halls" column:"name"`
	model.Metadata
}

// GetJoinQuery lets the generic repository pull the hall name alongside each row.
func (Equipment) GetJoinQuery() string {
	return "LEFT JOIN seminar_halls ON seminar_halls.id = equipment.hall_id"
}

// Log rows are append-only; there is no update or delete path.
type Log struct {
	ID                string    `db:"id"`
	EquipmentID       string    `db:"equipment_id"`
	PreviousCondition Condition `db:"previous_condition"`
	NewCondition      Condition `db:"new_condition"`
	Notes             string    `db:"notes"`
	UpdatedBy         string    `db:"updated_by"`
	model.Metadata
}

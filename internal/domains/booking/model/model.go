package model

import (
	"fmt"
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldHallID              = "hall_id"
	FieldTeacherID           = "teacher_id"
	FieldBookingDate         = "booking_date"
	FieldStartTime           = "start_time"
	FieldEndTime             = "end_time"
	FieldPurpose             = "purpose"
	FieldPermissionLetterURL = "permission_letter_url"
	FieldStatus              = "status"
	FieldRejectionReason     = "rejection_reason"
	FieldHodID               = "hod_id"
	FieldApprovedAt          = "approved_at"
)

// Status is the booking state machine. Writes only ever produce pending,
// approved, or rejected; completed stays in the vocabulary for stored rows.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return Status(value), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", value)
	}
}

// Decided reports whether the status is a terminal HOD decision.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

type Booking struct {
	ID                  string     `db:"id"`
	HallID              string     `db:"hall_id"`
	TeacherID           string     `db:"teacher_id"`
	BookingDate         time.Time  `db:"booking_date"`
	StartTime           string     `db:"start_time"`
	EndTime             string     `db:"end_time"`
	Purpose             string     `db:"purpose"`
	PermissionLetterURL *string    `db:"permission_letter_url"`
	Status              Status     `db:"status"`
	RejectionReason     *string    `db:"rejection_reason"`
	HodID               *string    `db:"hod_id"`
	ApprovedAt          *time.Time `db:"approved_at"`
	HallName            string     `db:"hall_name" table:"seminar_halls" column:"name"`
	HallLocation        string     `db:"hall_location" table:"seminar_halls" column:"location"`
	DepartmentID        string     `db:"hall_department_id" table:"seminar_halls" column:"department_id"`
	TeacherName         string     `db:"teacher_name" table:"teacher_profiles" column:"name"`
	model.Metadata
}

// GetJoinQuery pulls hall and teacher display columns alongside each booking.
func (Booking) GetJoinQuery() string {
	return "LEFT JOIN seminar_halls ON seminar_halls.id = bookings.hall_id " +
		"LEFT JOIN profiles AS teacher_profiles ON teacher_profiles.user_id = bookings.teacher_id"
}

package model

import (
	"fmt"

	"hallbook/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldTitle            = "title"
	FieldMessage          = "message"
	FieldType             = "type"
	FieldRelatedBookingID = "related_booking_id"
	FieldRead             = "read"
)

// Type is the closed set of notification kinds.
type Type string

const (
	TypeBookingRequest  Type = "booking_request"
	TypeBookingApproved Type = "booking_approved"
	TypeBookingRejected Type = "booking_rejected"
)

func ParseType(value string) (Type, error) {
	switch Type(value) {
	case TypeBookingRequest, TypeBookingApproved, TypeBookingRejected:
		return Type(value), nil
	default:
		return "", fmt.Errorf("unknown notification type %q", value)
	}
}

func (t Type) String() string {
	return string(t)
}

type Notification struct {
	ID               string  `db:"id"`
	UserID           string  `db:"user_id"`
	Title            string  `db:"title"`
	Message          string  `db:"message"`
	Type             Type    `db:"type"`
	RelatedBookingID *string `db:"related_booking_id"`
	Read             bool    `db:"read"`
	model.Metadata
}

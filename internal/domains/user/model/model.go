package model

import (
	"fmt"
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldProviderID = "provider_id"
	FieldEmail      = "email"
	FieldImageURL   = "image_url"
)

const (
	ProfileTableName  = "profiles"
	ProfileEntityName = "profile"

	ProfileFieldID           = "id"
	ProfileFieldUserID       = "user_id"
	ProfileFieldName         = "name"
	ProfileFieldEmail        = "email"
	ProfileFieldPhone        = "phone"
	ProfileFieldRole         = "role"
	ProfileFieldDepartmentID = "department_id"
)

// Role is the closed set of actor roles. Every authorization decision switches
// exhaustively over it; unknown values never pass Parse.
type Role string

const (
	RoleTeacher   Role = "teacher"
	RoleHOD       Role = "hod"
	RoleTechStaff Role = "tech_staff"
)

// ParseRole rejects anything outside the closed role set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleTeacher, RoleHOD, RoleTechStaff:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))

	return err == nil
}

func (r Role) String() string {
	return string(r)
}

// User mirrors an account at the external identity provider. Rows are only
// written through the provider webhook.
type User struct {
	ID         string  `db:"id"`
	ProviderID string  `db:"provider_id"`
	Email      string  `db:"email"`
	ImageURL   *string `db:"image_url"`
	model.Metadata
}

// Profile carries the local role and department binding for a mirrored user.
type Profile struct {
	ID           string  `db:"id"`
	UserID       string  `db:"user_id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Phone        *string `db:"phone"`
	Role         Role    `db:"role"`
	DepartmentID *string `db:"department_id"`
	model.Metadata
}

// Department returns the profile's department id or empty when unassigned.
func (p Profile) Department() string {
	if p.DepartmentID == nil {
		return ""
	}

	return *p.DepartmentID
}

// ProviderEvent is the webhook envelope the identity provider posts.
type ProviderEvent struct {
	Type string       `json:"type"`
	Data ProviderUser `json:"data"`
	At   time.Time    `json:"timestamp"`
}

type ProviderEmail struct {
	EmailAddress string `json:"email_address"`
}

type ProviderUser struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ImageURL       string          `json:"image_url"`
	EmailAddresses []ProviderEmail `json:"email_addresses"`
}

// PrimaryEmail returns the first address the provider reported.
func (u ProviderUser) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}

	return u.EmailAddresses[0].EmailAddress
}

package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"hallbook/internal/domains/booking/model"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
)

var errStartNotBeforeEnd = errors.New("start_time must be before end_time")

type CreateBookingRequest struct {
	HallID              string `json:"hall_id"               validate:"required"`
	BookingDate         string `json:"booking_date"          validate:"required"`
	StartTime           string `json:"start_time"            validate:"required"`
	EndTime             string `json:"end_time"              validate:"required"`
	Purpose             string `json:"purpose"               validate:"required"`
	PermissionLetterURL string `json:"permission_letter_url" validate:"omitempty,url"`
}

// ToModel validates the date/time formats and the start < end ordering.
func (c *CreateBookingRequest) ToModel(teacherID string) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.DateOnlyFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	startTime, err := time.Parse(constant.TimeOnlyFormat, c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	endTime, err := time.Parse(constant.TimeOnlyFormat, c.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	if !startTime.Before(endTime) {
		return model.Booking{}, errStartNotBeforeEnd
	}

	var letterURL *string
	if c.PermissionLetterURL != "" {
		letterURL = &c.PermissionLetterURL
	}

	return model.Booking{
		ID:                  uuid.NewString(),
		HallID:              c.HallID,
		TeacherID:           teacherID,
		BookingDate:         bookingDate,
		StartTime:           startTime.Format(constant.TimeOnlyFormat),
		EndTime:             endTime.Format(constant.TimeOnlyFormat),
		Purpose:             c.Purpose,
		PermissionLetterURL: letterURL,
		Status:              model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  teacherID,
			ModifiedBy: teacherID,
		},
	}, nil
}

type DecideBookingRequest struct {
	Status          string `json:"status"           validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"required_if=Status rejected"`
}

type BookingResponse struct {
	ID                  string     `json:"id"`
	HallID              string     `json:"hall_id"`
	HallName            string     `json:"hall_name,omitempty"`
	HallLocation        string     `json:"hall_location,omitempty"`
	TeacherID           string     `json:"teacher_id"`
	TeacherName         string     `json:"teacher_name,omitempty"`
	BookingDate         string     `json:"booking_date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	Purpose             string     `json:"purpose"`
	PermissionLetterURL *string    `json:"permission_letter_url,omitempty"`
	Status              string     `json:"status"`
	RejectionReason     *string    `json:"rejection_reason,omitempty"`
	HodID               *string    `json:"hod_id,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.HallName = model.HallName
	r.HallLocation = model.HallLocation
	r.TeacherID = model.TeacherID
	r.TeacherName = model.TeacherName
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Purpose = model.Purpose
	r.PermissionLetterURL = model.PermissionLetterURL
	r.Status = model.Status.String()
	r.RejectionReason = model.RejectionReason
	r.HodID = model.HodID
	r.ApprovedAt = model.ApprovedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type UploadLetterResponse struct {
	URL string `json:"url"`
}

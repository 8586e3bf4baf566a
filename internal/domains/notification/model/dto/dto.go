package dto

import (
	"hallbook/internal/domains/notification/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
)

type MarkReadRequest struct {
	ID string `json:"id" validate:"required"`
}

type NotificationResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	Type             string  `json:"type"`
	RelatedBookingID *string `json:"related_booking_id,omitempty"`
	Read             bool    `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Message = model.Message
	r.Type = model.Type.String()
	r.RelatedBookingID = model.RelatedBookingID
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

package response

import (
	"time"

	"homefix-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resourceId"`
	CustomerID  uuid.UUID `json:"customerId"`
	ServiceDate string    `json:"serviceDate"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resourceId"`
	ServiceDate string    `json:"serviceDate"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	ResourceID  uuid.UUID `json:"resourceId"`
	ServiceDate string    `json:"serviceDate"`
	Slots       []string  `json:"slots"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAppointmentListItem(item *queries.AppointmentListItem) *AppointmentListResponse {
	var resp AppointmentListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ResourceID:  view.ResourceID,
		ServiceDate: view.ServiceDate,
		Slots:       view.Slots,
	}
}

package response

import (
	"time"

	"pro-video-services/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ProjectType string    `json:"projectType,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	Success        bool     `json:"success"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

type BookingCreatedResponse struct {
	Success             bool             `json:"success"`
	Message             string           `json:"message"`
	ConfirmationMessage string           `json:"confirmationMessage"`
	Booking             *BookingResponse `json:"booking"`
}

type BookingCancelledResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Success  bool               `json:"success"`
	Bookings []*BookingResponse `json:"bookings"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID(),
		Name:        b.Name(),
		Email:       b.Email(),
		Phone:       b.Phone(),
		Company:     b.Company(),
		Date:        b.Date().String(),
		Time:        b.Slot().String(),
		ProjectType: b.ProjectType(),
		Budget:      b.Budget(),
		Message:     b.Message(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}

func FromSlots(slots []booking.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

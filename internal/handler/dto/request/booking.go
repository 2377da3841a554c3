package request

import (
	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/usecase"

	"github.com/jinzhu/copier"
)

// CreateBookingRequest leaves required-field checks to the domain so the
// response carries a single consolidated message.
type CreateBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

func (r *CreateBookingRequest) ToParams() (usecase.CreateBookingParams, error) {
	var draft booking.Draft
	if err := copier.Copy(&draft, r); err != nil {
		return usecase.CreateBookingParams{}, err
	}
	return usecase.CreateBookingParams{Draft: draft}, nil
}

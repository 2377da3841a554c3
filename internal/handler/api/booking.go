package api

import (
	"net/http"

	reqdto "pro-video-services/internal/handler/dto/request"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Available slots
// @Description List the open consultation slots for a calendar date
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date, slots, err := h.bookingUseCase.GetAvailability(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load availability")
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Success:        true,
		Date:           date.String(),
		AvailableSlots: resdto.FromSlots(slots),
	})
}

// @Summary Book consultation
// @Description Book a consultation slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/book [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err, "Booking failed")
		return
	}

	c.JSON(http.StatusOK, resdto.BookingCreatedResponse{
		Success:             true,
		Message:             "Booking confirmed!",
		ConfirmationMessage: result.ConfirmationMessage,
		Booking:             resdto.FromBooking(result.Booking),
	})
}

// @Summary List bookings
// @Description List all bookings ordered by date and time
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{
		Success:  true,
		Bookings: resdto.FromBookings(bookings),
	})
}

// @Summary Cancel booking
// @Description Mark a booking as cancelled and release its slot
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingCancelledResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", "")
		return
	}

	b, err := h.bookingUseCase.CancelBooking(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}

	c.JSON(http.StatusOK, resdto.BookingCancelledResponse{
		Success: true,
		Message: "Booking cancelled",
		Booking: resdto.FromBooking(b),
	})
}

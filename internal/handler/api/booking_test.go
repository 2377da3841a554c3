//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/handler/api"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/usecase"
	"pro-video-services/tests/common/builder"
	"pro-video-services/tests/common/httptest"
	"pro-video-services/tests/common/testutil"
	usecasemock "pro-video-services/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)

	s.router.GET("/bookings/availability", s.handler.GetAvailability)
	s.router.POST("/bookings/book", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	s.Run("success: returns open slots for the day", func() {
		date, _ := booking.ParseDate("2025-06-02")
		s.mockUseCase.EXPECT().GetAvailability(gomock.Any(), "2025-06-02").
			Return(date, []booking.Slot{"09:00", "14:00"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/availability?date=2025-06-02", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("2025-06-02", response.Date)
		s.Equal([]string{"09:00", "14:00"}, response.AvailableSlots)
	})

	s.Run("error: 400 when date is missing", func() {
		s.mockUseCase.EXPECT().GetAvailability(gomock.Any(), "").
			Return(booking.Date{}, nil, usecase.ErrDateRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Date parameter required")
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings/book"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequest()

	s.Run("success: returns the booking with a confirmation message", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), b.BuildParams()).
			Return(&usecase.BookingResult{
				Booking:             b.MustBuildDomain(),
				ConfirmationMessage: "Hi A! Your consultation is confirmed",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Booking confirmed!", response.Message)
		s.Equal(b.ID, response.Booking.ID)
		s.Equal("confirmed", response.Booking.Status)
		s.Contains(response.ConfirmationMessage, "Hi A!")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			mutate         func(m map[string]any)
			useCaseErr     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing name",
				mutate:         testutil.Field("name", nil),
				useCaseErr:     errs.Mark(booking.ErrMissingRequiredFields, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Name, email, date, and time are required",
			},
			{
				name:           "slot already taken",
				useCaseErr:     errs.MarkNew(errs.ErrSlotConflict, "the 09:00 slot on 2025-06-02 is already booked"),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "storage failure",
				useCaseErr:     errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Something went wrong",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody)
				if tc.mutate != nil {
					body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
				}
				s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.useCaseErr)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns every booking", func() {
		first := builder.NewBookingBuilder().MustBuildDomain()
		second := builder.NewBookingBuilder().WithSlot("2025-06-03", "10:00").AsCancelled().MustBuildDomain()
		s.mockUseCase.EXPECT().ListBookings(gomock.Any()).
			Return([]*booking.Booking{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Bookings, 2)
		s.Equal("cancelled", response.Bookings[1].Status)
	})

	s.Run("success: empty optional fields are left out of the payload", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ProjectType = "" })
		s.mockUseCase.EXPECT().ListBookings(gomock.Any()).
			Return([]*booking.Booking{b.MustBuildDomain()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var raw struct {
			Bookings []map[string]any `json:"bookings"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Require().Len(raw.Bookings, 1)
		for _, key := range []string{"phone", "company", "projectType", "budget", "message"} {
			s.NotContains(raw.Bookings[0], key)
		}
		s.Contains(raw.Bookings[0], "email")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: marks the booking cancelled", func() {
		b := builder.NewBookingBuilder().AsCancelled()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), b.ID).
			Return(b.MustBuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/cancel", nil, "")

		var response resdto.BookingCancelledResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled", response.Message)
		s.Equal("cancelled", response.Booking.Status)
	})

	s.Run("error: 404 for an unknown booking", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil, usecase.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

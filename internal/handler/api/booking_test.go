//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			next(c)
		}
	}

	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/bookings", authed(s.handler.GetUserBookings))
	s.router.GET("/bookings/:id", authed(s.handler.GetBooking))
	s.router.POST("/bookings/:id/confirm", authed(s.handler.ConfirmPayment))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with booking and payment order", func() {
		bb := builder.NewBookingBuilder()
		reqBody := bb.BuildCreateDTO()
		result := &commands.CreateBookingResult{
			Booking: bb.BuildView(),
			PaymentOrder: commands.PaymentOrder{
				OrderID:    "order_abc123",
				TotalPaise: 103500,
				Currency:   "INR",
			},
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bb.ID, response.Booking.ID)
		s.Equal("order_abc123", response.PaymentOrder.OrderID)
		s.Equal(int64(103500), response.PaymentOrder.TotalPaise)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"venue_id": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"unknown venue", commands.ErrVenueNotFound, http.StatusNotFound},
			{"venue not bookable", commands.ErrVenueNotBookable, http.StatusUnprocessableEntity},
			{"venue closed", commands.ErrVenueClosedOnDate, http.StatusUnprocessableEntity},
			{"stale slot", commands.ErrSlotUnavailable, http.StatusConflict},
			{"non-contiguous slots", commands.ErrNonContiguousSelection, http.StatusBadRequest},
			{"invalid input", commands.ErrInvalidBookingInput, http.StatusBadRequest},
			{"payment order failed", commands.ErrPaymentOrderFailed, http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				reqBody := builder.NewBookingBuilder().BuildCreateDTO()
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestConfirmPayment() {
	s.Run("success: returns 200 with the confirmed booking", func() {
		bb := builder.NewBookingBuilder().WithStatus("confirmed")
		reqBody := bb.BuildConfirmDTO()
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), bb.ID, s.userID, reqBody).
			Return(bb.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bb.ID.String()+"/confirm", reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed booking id", func() {
		reqBody := builder.NewBookingBuilder().BuildConfirmDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/confirm", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound},
			{"not pending", commands.ErrBookingNotPending, http.StatusUnprocessableEntity},
			{"lost the slot race", commands.ErrBookingConflict, http.StatusConflict},
			{"verification failed", commands.ErrPaymentVerificationFailed, http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				bb := builder.NewBookingBuilder()
				reqBody := bb.BuildConfirmDTO()
				s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), bb.ID, s.userID, reqBody).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bb.ID.String()+"/confirm", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the caller's booking", func() {
		bb := builder.NewBookingBuilder()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bb.ID).
			Return(bb.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bb.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bb.ID, response.ID)
	})

	s.Run("error: 404 for an unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for another user's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, id).
			Return(nil, queries.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("success: lists the caller's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), VenueName: "Test Cricket Box", Date: "2026-03-02", Status: "confirmed", TotalPaise: 103500},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(items[0].ID, response[0].ID)
	})
}

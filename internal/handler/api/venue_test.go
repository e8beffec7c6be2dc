//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/httptest"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockVenueCommands
	mockVenueQueries *queriesmock.MockVenueQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockBookings     *queriesmock.MockBookingQueries
	handler          *api.VenueHandler
	ownerID          uuid.UUID
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVenueCommands(s.mockCtrl)
	s.mockVenueQueries = queriesmock.NewMockVenueQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockCommands, s.mockVenueQueries, s.mockAvailability, s.mockBookings, time.UTC)
	s.ownerID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.ownerID)
			next(c)
		}
	}

	s.router.GET("/venues/:id/blockouts", authed(s.handler.ListBlockouts))
	s.router.GET("/venues/:id/bookings", authed(s.handler.ListVenueBookings))
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func (s *VenueHandlerTestSuite) TestListBlockouts() {
	s.Run("success: returns the owner's blockouts", func() {
		venueID := uuid.New()
		views := []*queries.BlockoutView{
			{ID: uuid.New(), StartDate: "2026-03-02", EndDate: "2026-03-02", Reason: "pitch repair", Kind: "maintenance"},
		}
		s.mockVenueQueries.EXPECT().ListBlockouts(gomock.Any(), s.ownerID, venueID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/blockouts", nil, "")

		var response []*resdto.BlockoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("error: 403 for a venue owned by someone else", func() {
		venueID := uuid.New()
		s.mockVenueQueries.EXPECT().ListBlockouts(gomock.Any(), s.ownerID, venueID).
			Return(nil, queries.ErrNotVenueOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/blockouts", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 for an unknown venue", func() {
		venueID := uuid.New()
		s.mockVenueQueries.EXPECT().ListBlockouts(gomock.Any(), s.ownerID, venueID).
			Return(nil, queries.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/blockouts", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

func (s *VenueHandlerTestSuite) TestListVenueBookings() {
	s.Run("success: returns the venue's booking ledger", func() {
		venueID := uuid.New()
		items := []*queries.BookingListItem{
			{ID: uuid.New(), VenueID: venueID, Date: "2026-03-02", Status: "confirmed", TotalPaise: 103500},
		}
		s.mockBookings.EXPECT().ListByVenue(gomock.Any(), s.ownerID, venueID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/bookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("error: 403 for a venue owned by someone else", func() {
		venueID := uuid.New()
		s.mockBookings.EXPECT().ListByVenue(gomock.Any(), s.ownerID, venueID).
			Return(nil, queries.ErrNotVenueOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 for an unknown venue", func() {
		venueID := uuid.New()
		s.mockBookings.EXPECT().ListByVenue(gomock.Any(), s.ownerID, venueID).
			Return(nil, queries.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

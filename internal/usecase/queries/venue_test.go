//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venuebook/internal/infra"
	"venuebook/internal/usecase/queries"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockVenueReadStore
	sut       queries.VenueQueries
}

func (s *VenueQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockVenueReadStore(s.mockCtrl)
	s.sut = queries.NewVenueQueries(s.mockStore)
}

func (s *VenueQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueQueriesSuite(t *testing.T) {
	suite.Run(t, new(VenueQueriesTestSuite))
}

func (s *VenueQueriesTestSuite) TestListBlockouts() {
	s.Run("success: venue owner reads the blockout calendar", func() {
		actor := uuid.New()
		venueID := uuid.New()
		views := []*queries.BlockoutView{{ID: uuid.New(), StartDate: "2026-03-02", EndDate: "2026-03-02"}}
		s.mockStore.EXPECT().FindByID(gomock.Any(), venueID).
			Return(&queries.VenueView{ID: venueID, OwnerID: actor}, nil)
		s.mockStore.EXPECT().ListBlockouts(gomock.Any(), venueID).Return(views, nil)

		got, err := s.sut.ListBlockouts(context.Background(), actor, venueID)
		s.Require().NoError(err)
		s.Equal(views, got)
	})

	s.Run("error: owner-role account that does not own the venue", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().FindByID(gomock.Any(), venueID).
			Return(&queries.VenueView{ID: venueID, OwnerID: uuid.New()}, nil)

		_, err := s.sut.ListBlockouts(context.Background(), uuid.New(), venueID)
		s.ErrorIs(err, queries.ErrNotVenueOwner)
	})

	s.Run("error: unknown venue", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().FindByID(gomock.Any(), venueID).
			Return(nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

		_, err := s.sut.ListBlockouts(context.Background(), uuid.New(), venueID)
		s.ErrorIs(err, queries.ErrVenueNotFound)
	})
}

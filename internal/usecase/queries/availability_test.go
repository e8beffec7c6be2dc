//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockScheduleReadStore
	sut       queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockScheduleReadStore(s.mockCtrl)
	s.sut = queries.NewAvailabilityQueries(
		s.mockStore,
		schedule.NewGenerator(60),
		clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
	)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

var availDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func (s *AvailabilityQueriesTestSuite) calendar(venueID uuid.UUID, weekly schedule.WeeklySchedule) *queries.VenueCalendar {
	return &queries.VenueCalendar{
		VenueID:         venueID,
		Weekly:          weekly,
		HourlyRatePaise: 50000,
		Approved:        true,
	}
}

func (s *AvailabilityQueriesTestSuite) mustTOD(v string) schedule.TimeOfDay {
	tod, err := schedule.ParseTimeOfDay(v)
	s.Require().NoError(err)
	return tod
}

func (s *AvailabilityQueriesTestSuite) TestDaySlots() {
	s.Run("success: builds the slot board for an open day", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().GetVenueCalendar(gomock.Any(), venueID).
			Return(s.calendar(venueID, builder.OpenAllWeek("09:00", "12:00")), nil)
		s.mockStore.EXPECT().ListBlockoutsOn(gomock.Any(), venueID, availDate).Return(nil, nil)
		s.mockStore.EXPECT().ListBookingsOn(gomock.Any(), venueID, availDate).Return(nil, nil)

		view, err := s.sut.DaySlots(context.Background(), venueID, availDate)
		s.Require().NoError(err)

		s.Equal(venueID, view.VenueID)
		s.Equal("2026-03-02", view.Date)
		s.Equal(60, view.SlotWidthMinutes)
		s.Require().Len(view.Slots, 3)
		s.Equal("09:00", view.Slots[0].StartTime)
		s.Equal("10:00", view.Slots[0].EndTime)
		s.Equal("available", view.Slots[0].Status)
		s.Equal(int64(50000), view.Slots[0].PricePaise)
	})

	s.Run("success: closed weekday yields an empty board", func() {
		venueID := uuid.New()
		weekly := builder.ClosedOn(builder.OpenAllWeek("09:00", "12:00"), time.Monday)
		s.mockStore.EXPECT().GetVenueCalendar(gomock.Any(), venueID).
			Return(s.calendar(venueID, weekly), nil)
		s.mockStore.EXPECT().ListBlockoutsOn(gomock.Any(), venueID, availDate).Return(nil, nil)
		s.mockStore.EXPECT().ListBookingsOn(gomock.Any(), venueID, availDate).Return(nil, nil)

		view, err := s.sut.DaySlots(context.Background(), venueID, availDate)
		s.Require().NoError(err)
		s.Empty(view.Slots)
	})

	s.Run("success: missing exception data degrades to an unblocked board", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().GetVenueCalendar(gomock.Any(), venueID).
			Return(s.calendar(venueID, builder.OpenAllWeek("09:00", "12:00")), nil)
		s.mockStore.EXPECT().ListBlockoutsOn(gomock.Any(), venueID, availDate).
			Return(nil, infra.WrapRepoErr("blockouts unavailable", nil))
		s.mockStore.EXPECT().ListBookingsOn(gomock.Any(), venueID, availDate).
			Return(nil, infra.WrapRepoErr("bookings unavailable", nil))

		view, err := s.sut.DaySlots(context.Background(), venueID, availDate)
		s.Require().NoError(err)
		s.Require().Len(view.Slots, 3)
		for _, slot := range view.Slots {
			s.Equal("available", slot.Status)
		}
	})

	s.Run("success: exceptions mark the affected slots", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().GetVenueCalendar(gomock.Any(), venueID).
			Return(s.calendar(venueID, builder.OpenAllWeek("09:00", "12:00")), nil)

		start, end := s.mustTOD("09:00"), s.mustTOD("10:00")
		s.mockStore.EXPECT().ListBlockoutsOn(gomock.Any(), venueID, availDate).
			Return([]schedule.Blockout{{
				ID:        uuid.New(),
				StartDate: availDate,
				EndDate:   availDate,
				Start:     &start,
				End:       &end,
				Kind:      schedule.BlockoutMaintenance,
			}}, nil)
		s.mockStore.EXPECT().ListBookingsOn(gomock.Any(), venueID, availDate).
			Return([]schedule.ExistingBooking{{
				ID:     uuid.New(),
				Date:   availDate,
				Start:  s.mustTOD("10:00"),
				End:    s.mustTOD("11:00"),
				Status: schedule.BookingConfirmed,
			}}, nil)

		view, err := s.sut.DaySlots(context.Background(), venueID, availDate)
		s.Require().NoError(err)
		s.Require().Len(view.Slots, 3)
		s.Equal("blocked", view.Slots[0].Status)
		s.Equal("booked", view.Slots[1].Status)
		s.Equal("available", view.Slots[2].Status)
	})

	s.Run("error: unknown venue", func() {
		venueID := uuid.New()
		s.mockStore.EXPECT().GetVenueCalendar(gomock.Any(), venueID).
			Return(nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

		_, err := s.sut.DaySlots(context.Background(), venueID, availDate)
		s.ErrorIs(err, queries.ErrVenueNotFound)
	})
}

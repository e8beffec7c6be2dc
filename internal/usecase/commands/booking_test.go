//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/venue"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockVenueRepo   *commandsmock.MockVenueRepository
	mockBlockouts   *commandsmock.MockBlockoutRepository
	mockBookingRepo *commandsmock.MockBookingRepository
	mockGateway     *commandsmock.MockPaymentGateway
	mockQueries     *queriesmock.MockBookingQueries
	clk             *clock.MockClock
	sut             commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVenueRepo = commandsmock.NewMockVenueRepository(s.mockCtrl)
	s.mockBlockouts = commandsmock.NewMockBlockoutRepository(s.mockCtrl)
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	s.sut = commands.NewBookingCommands(
		s.mockVenueRepo,
		s.mockBlockouts,
		s.mockBookingRepo,
		s.mockGateway,
		s.mockQueries,
		booking.NewFactory(s.clk, booking.NewMoney(3500)),
		schedule.NewGenerator(60),
		"INR",
		time.UTC,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

const bookingDateStr = "2026-03-02"

var bookingDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func (s *BookingCommandsTestSuite) mustTOD(v string) schedule.TimeOfDay {
	tod, err := schedule.ParseTimeOfDay(v)
	s.Require().NoError(err)
	return tod
}

func (s *BookingCommandsTestSuite) createRequest(vb *builder.VenueBuilder, slotIDs []uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:     vb.ID,
		Date:        bookingDateStr,
		BookingType: "hourly",
		SlotIDs:     slotIDs,
		GuestCount:  10,
		Contact: reqdto.ContactDTO{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Phone: "+91-9876543210",
		},
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: prices the selection and creates a pending booking", func() {
		vb := builder.NewVenueBuilder()
		userID := uuid.New()
		bookingID := uuid.New()
		slotIDs := []uuid.UUID{
			schedule.SlotID(vb.ID, bookingDate, s.mustTOD("10:00")),
			schedule.SlotID(vb.ID, bookingDate, s.mustTOD("11:00")),
		}
		req := s.createRequest(vb, slotIDs)

		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)
		s.mockBlockouts.EXPECT().ListOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockBookingRepo.EXPECT().ListConfirmedOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockGateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), "INR", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, amount booking.Money, _, _ string, _ map[string]string) (string, error) {
				s.Equal(int64(103500), amount.Paise())
				return "order_abc123", nil
			})
		s.mockBookingRepo.EXPECT().
			CreatePending(gomock.Any(), gomock.Any(), "order_abc123").
			DoAndReturn(func(_ context.Context, r *booking.Request, _ string) (uuid.UUID, error) {
				s.Equal(vb.ID, r.VenueID())
				s.Equal(userID, r.UserID())
				s.Equal(s.mustTOD("10:00"), r.Start())
				s.Equal(s.mustTOD("12:00"), r.End())
				s.Equal(int64(103500), r.Quote().Total().Paise())
				return bookingID, nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, Status: "pending"}, nil)

		result, err := s.sut.CreateBooking(context.Background(), req, userID)
		s.Require().NoError(err)
		s.Equal(bookingID, result.Booking.ID)
		s.Equal("order_abc123", result.PaymentOrder.OrderID)
		s.Equal(int64(103500), result.PaymentOrder.TotalPaise)
		s.Equal("INR", result.PaymentOrder.Currency)
	})

	s.Run("error: unknown venue", func() {
		vb := builder.NewVenueBuilder()
		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).
			Return(nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, nil), uuid.New())
		s.ErrorIs(err, commands.ErrVenueNotFound)
	})

	s.Run("error: venue awaiting approval is not bookable", func() {
		vb := builder.NewVenueBuilder().WithStatus(venue.StatusPending)
		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, nil), uuid.New())
		s.ErrorIs(err, commands.ErrVenueNotBookable)
	})

	s.Run("error: venue closed on the requested weekday", func() {
		vb := builder.NewVenueBuilder().
			WithWeekly(builder.ClosedOn(builder.OpenAllWeek("09:00", "22:00"), time.Monday))
		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, nil), uuid.New())
		s.ErrorIs(err, commands.ErrVenueClosedOnDate)
	})

	s.Run("error: stale selection loses to a confirmed booking", func() {
		vb := builder.NewVenueBuilder()
		slotIDs := []uuid.UUID{schedule.SlotID(vb.ID, bookingDate, s.mustTOD("10:00"))}

		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)
		s.mockBlockouts.EXPECT().ListOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockBookingRepo.EXPECT().ListConfirmedOn(gomock.Any(), vb.ID, bookingDate).
			Return([]schedule.ExistingBooking{{
				ID:     uuid.New(),
				Date:   bookingDate,
				Start:  s.mustTOD("10:00"),
				End:    s.mustTOD("11:00"),
				Status: schedule.BookingConfirmed,
			}}, nil)

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, slotIDs), uuid.New())
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("error: non-contiguous selection", func() {
		vb := builder.NewVenueBuilder()
		slotIDs := []uuid.UUID{
			schedule.SlotID(vb.ID, bookingDate, s.mustTOD("10:00")),
			schedule.SlotID(vb.ID, bookingDate, s.mustTOD("13:00")),
		}

		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)
		s.mockBlockouts.EXPECT().ListOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockBookingRepo.EXPECT().ListConfirmedOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, slotIDs), uuid.New())
		s.ErrorIs(err, commands.ErrNonContiguousSelection)
	})

	s.Run("success: missing blockout data is fail-open, not fatal", func() {
		vb := builder.NewVenueBuilder()
		bookingID := uuid.New()
		slotIDs := []uuid.UUID{schedule.SlotID(vb.ID, bookingDate, s.mustTOD("10:00"))}

		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)
		s.mockBlockouts.EXPECT().ListOn(gomock.Any(), vb.ID, bookingDate).
			Return(nil, infra.WrapRepoErr("blockouts unavailable", nil))
		s.mockBookingRepo.EXPECT().ListConfirmedOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockGateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), "INR", gomock.Any(), gomock.Any()).
			Return("order_abc123", nil)
		s.mockBookingRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any(), "order_abc123").
			Return(bookingID, nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, Status: "pending"}, nil)

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, slotIDs), uuid.New())
		s.NoError(err)
	})

	s.Run("error: payment order creation fails", func() {
		vb := builder.NewVenueBuilder()
		slotIDs := []uuid.UUID{schedule.SlotID(vb.ID, bookingDate, s.mustTOD("10:00"))}

		s.mockVenueRepo.EXPECT().FindByID(gomock.Any(), vb.ID).Return(vb.BuildSnapshot(), nil)
		s.mockBlockouts.EXPECT().ListOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockBookingRepo.EXPECT().ListConfirmedOn(gomock.Any(), vb.ID, bookingDate).Return(nil, nil)
		s.mockGateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), "INR", gomock.Any(), gomock.Any()).
			Return("", infra.WrapRepoErr("gateway unreachable", nil))

		_, err := s.sut.CreateBooking(context.Background(), s.createRequest(vb, slotIDs), uuid.New())
		s.ErrorIs(err, commands.ErrPaymentOrderFailed)
	})
}

func (s *BookingCommandsTestSuite) pendingSnapshot(bookingID, userID uuid.UUID) *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:             bookingID,
		VenueID:        uuid.New(),
		UserID:         userID,
		Date:           bookingDate,
		Start:          s.mustTOD("10:00"),
		End:            s.mustTOD("12:00"),
		Status:         schedule.BookingPending,
		PaymentOrderID: "order_abc123",
		TotalPaise:     103500,
	}
}

func (s *BookingCommandsTestSuite) confirmRequest() reqdto.ConfirmPaymentRequest {
	return reqdto.ConfirmPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz789",
		RazorpaySignature: "sig",
	}
}

func (s *BookingCommandsTestSuite) TestConfirmPayment() {
	s.Run("success: verified payment confirms the booking", func() {
		bookingID, userID := uuid.New(), uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.pendingSnapshot(bookingID, userID), nil)
		s.mockGateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(nil)
		s.mockBookingRepo.EXPECT().ConfirmPaid(gomock.Any(), bookingID, "pay_xyz789").Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, Status: "confirmed"}, nil)

		view, err := s.sut.ConfirmPayment(context.Background(), bookingID, userID, s.confirmRequest())
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("error: unknown booking", func() {
		bookingID := uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, uuid.New(), s.confirmRequest())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: another user's booking looks like not found", func() {
		bookingID := uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.pendingSnapshot(bookingID, uuid.New()), nil)

		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, uuid.New(), s.confirmRequest())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: booking already confirmed", func() {
		bookingID, userID := uuid.New(), uuid.New()
		snapshot := s.pendingSnapshot(bookingID, userID)
		snapshot.Status = schedule.BookingConfirmed
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).Return(snapshot, nil)

		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, userID, s.confirmRequest())
		s.ErrorIs(err, commands.ErrBookingNotPending)
	})

	s.Run("error: order id does not match the booking", func() {
		bookingID, userID := uuid.New(), uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.pendingSnapshot(bookingID, userID), nil)

		req := s.confirmRequest()
		req.RazorpayOrderID = "order_other"
		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, userID, req)
		s.ErrorIs(err, commands.ErrPaymentVerificationFailed)
	})

	s.Run("error: rejected signature", func() {
		bookingID, userID := uuid.New(), uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.pendingSnapshot(bookingID, userID), nil)
		s.mockGateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").
			Return(infra.WrapRepoErr("signature mismatch", nil))

		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, userID, s.confirmRequest())
		s.ErrorIs(err, commands.ErrPaymentVerificationFailed)
	})

	s.Run("error: lost the race for the slot", func() {
		bookingID, userID := uuid.New(), uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(s.pendingSnapshot(bookingID, userID), nil)
		s.mockGateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(nil)
		s.mockBookingRepo.EXPECT().ConfirmPaid(gomock.Any(), bookingID, "pay_xyz789").
			Return(infra.WrapRepoErr("overlapping confirmed booking", nil, infra.KindConflict))

		_, err := s.sut.ConfirmPayment(context.Background(), bookingID, userID, s.confirmRequest())
		s.ErrorIs(err, commands.ErrBookingConflict)
	})
}

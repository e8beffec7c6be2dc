package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/venue"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound             = errs.New("venue not found")
	ErrVenueNotBookable          = errs.New("venue is not open for booking")
	ErrVenueClosedOnDate         = errs.New("venue is closed on the requested date")
	ErrSlotUnavailable           = errs.New("selected slot is not available")
	ErrNonContiguousSelection    = errs.New("selected slots are not contiguous")
	ErrInvalidBookingInput       = errs.New("invalid booking input")
	ErrBookingNotFound           = errs.New("booking not found")
	ErrBookingNotPending         = errs.New("booking is not awaiting payment")
	ErrBookingConflict           = errs.New("slot was booked by someone else")
	ErrPaymentOrderFailed        = errs.New("failed to create payment order")
	ErrPaymentVerificationFailed = errs.New("payment verification failed")
	ErrDatabaseOperationFailed   = errs.New("database operation failed")
)

// PaymentOrder is what the checkout frontend needs to collect the payment.
type PaymentOrder struct {
	OrderID    string
	TotalPaise int64
	Currency   string
}

type CreateBookingResult struct {
	Booking      *queries.BookingView
	PaymentOrder PaymentOrder
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	ConfirmPayment(ctx context.Context, bookingID, userID uuid.UUID, req reqdto.ConfirmPaymentRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	venueRepo      VenueRepository
	blockoutRepo   BlockoutRepository
	bookingRepo    BookingRepository
	gateway        PaymentGateway
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	generator      schedule.Generator
	currency       string
	venueLocation  *time.Location
}

func NewBookingCommands(
	venueRepo VenueRepository,
	blockoutRepo BlockoutRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	generator schedule.Generator,
	currency string,
	venueLocation *time.Location,
) BookingCommands {
	return &bookingCommandsImpl{
		venueRepo:      venueRepo,
		blockoutRepo:   blockoutRepo,
		bookingRepo:    bookingRepo,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		factory:        factory,
		generator:      generator,
		currency:       currency,
		venueLocation:  venueLocation,
	}
}

// CreateBooking regenerates the slot board server-side, validates the
// selection against it, prices the booking and creates the payment order
// before persisting the pending record. The binding availability guarantee
// still belongs to ConfirmPayment's atomic re-check — this path only rejects
// selections that are already stale.
func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*CreateBookingResult, error) {
	venueEntity, err := b.loadBookableVenue(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	date, err := req.ParseDate(b.venueLocation)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	bookingType := booking.Type(req.BookingType)
	dayHours := venueEntity.Weekly().HoursFor(date.Weekday())
	if !dayHours.Open {
		return nil, ErrVenueClosedOnDate
	}

	selection, err := b.resolveSelection(ctx, venueEntity, bookingType, req.SlotIDs, date)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewContact(req.Contact.Name, req.Contact.Email, req.Contact.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	request, err := b.factory.CreateRequest(
		venueEntity.Spec(),
		userID,
		date,
		bookingType,
		selection,
		dayHours,
		req.GuestCount,
		contact,
		req.GetSpecialRequests(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	orderID, err := b.gateway.CreateOrder(ctx, request.Quote().Total(), b.currency, request.ID().String(), map[string]string{
		"venue_id": request.VenueID().String(),
		"date":     request.Date().Format("2006-01-02"),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentOrderFailed)
	}

	bookingID, err := b.bookingRepo.CreatePending(ctx, request, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		Booking: view,
		PaymentOrder: PaymentOrder{
			OrderID:    orderID,
			TotalPaise: request.Quote().Total().Paise(),
			Currency:   b.currency,
		},
	}, nil
}

// ConfirmPayment verifies the gateway signature and promotes the booking to
// confirmed. The repository statement performs the final availability
// re-check; a conflict here is the one true concurrency hazard and the caller
// must re-fetch slots and re-select.
func (b *bookingCommandsImpl) ConfirmPayment(
	ctx context.Context,
	bookingID, userID uuid.UUID,
	req reqdto.ConfirmPaymentRequest,
) (*queries.BookingView, error) {
	snapshot, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snapshot.UserID != userID {
		return nil, ErrBookingNotFound
	}
	if snapshot.Status != schedule.BookingPending {
		return nil, ErrBookingNotPending
	}
	if snapshot.PaymentOrderID != req.RazorpayOrderID {
		return nil, ErrPaymentVerificationFailed
	}

	if err := b.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		slog.Warn("payment signature rejected", "booking_id", bookingID, "order_id", req.RazorpayOrderID)
		return nil, errs.Mark(err, ErrPaymentVerificationFailed)
	}

	if err := b.bookingRepo.ConfirmPaid(ctx, bookingID, req.RazorpayPaymentID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (b *bookingCommandsImpl) loadBookableVenue(ctx context.Context, venueID uuid.UUID) (*venue.Venue, error) {
	snapshot, err := b.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	venueEntity := snapshot.ToEntity()
	if !venueEntity.IsApproved() {
		return nil, ErrVenueNotBookable
	}
	return venueEntity, nil
}

// resolveSelection rebuilds the day's slots from current data and resolves
// the user's slot ids against them. Daily bookings carry no selection.
func (b *bookingCommandsImpl) resolveSelection(
	ctx context.Context,
	venueEntity *venue.Venue,
	bookingType booking.Type,
	slotIDs []uuid.UUID,
	date time.Time,
) (booking.Selection, error) {
	if bookingType != booking.TypeHourly {
		return booking.Selection{}, nil
	}

	blockouts, err := b.blockoutRepo.ListOn(ctx, venueEntity.ID(), date)
	if err != nil {
		slog.Warn("no blockout data for date, treating as unblocked",
			"venue_id", venueEntity.ID(), "date", date.Format("2006-01-02"), "error", err.Error())
		blockouts = nil
	}

	existing, err := b.bookingRepo.ListConfirmedOn(ctx, venueEntity.ID(), date)
	if err != nil {
		return booking.Selection{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slots := b.generator.DaySlots(
		venueEntity.ID(),
		venueEntity.Weekly(),
		blockouts,
		existing,
		date,
		venueEntity.Rates().Hourly.Paise(),
		b.factory.Clock.Now(),
	)

	selection, err := booking.NewSelection(slotIDs, slots)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotUnavailable):
			return booking.Selection{}, ErrSlotUnavailable
		case errors.Is(err, booking.ErrNonContiguousSelection):
			return booking.Selection{}, ErrNonContiguousSelection
		default:
			return booking.Selection{}, errs.Mark(err, ErrInvalidBookingInput)
		}
	}
	return selection, nil
}

package booking

import (
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/pkg/clock"

	"github.com/google/uuid"
)

// VenueSpec is the slice of venue state the booking flow needs: identity,
// capacity (0 when unknown) and the rate card.
type VenueSpec struct {
	ID       uuid.UUID
	Capacity int
	Rates    RateCard
}

type Factory struct {
	Clock       clock.Clock
	PlatformFee Money
}

func NewFactory(clk clock.Clock, platformFee Money) *Factory {
	return &Factory{
		Clock:       clk,
		PlatformFee: platformFee,
	}
}

// CreateRequest validates the booking input, prices it and assembles the
// immutable hand-off record. Hourly bookings span the validated selection;
// daily bookings span the venue's open hours for the date.
func (f *Factory) CreateRequest(
	venue VenueSpec,
	userID uuid.UUID,
	date time.Time,
	bookingType Type,
	selection Selection,
	dayHours schedule.DayHours,
	guestCount int,
	contact Contact,
	specialRequests string,
) (*Request, error) {
	if err := f.validateDate(date); err != nil {
		return nil, err
	}

	if guestCount < 1 {
		return nil, ErrGuestCountInvalid
	}
	if venue.Capacity > 0 && guestCount > venue.Capacity {
		return nil, ErrGuestCountExceedsCapacity
	}

	var start, end schedule.TimeOfDay
	var slotIDs []uuid.UUID
	switch bookingType {
	case TypeHourly:
		s, e, ok := selection.Span()
		if !ok {
			return nil, ErrEmptyHourlySelection
		}
		start, end = s, e
		slotIDs = selection.SlotIDs()
	case TypeDaily:
		start, end = dayHours.Start, dayHours.End
	default:
		return nil, ErrInvalidQuoteInput
	}

	quote, err := ComputeQuote(bookingType, selection, venue.Rates, f.PlatformFee)
	if err != nil {
		return nil, err
	}

	return &Request{
		id:              uuid.New(),
		venueID:         venue.ID,
		userID:          userID,
		date:            date,
		bookingType:     bookingType,
		slotIDs:         slotIDs,
		start:           start,
		end:             end,
		guestCount:      guestCount,
		contact:         contact,
		specialRequests: specialRequests,
		quote:           quote,
	}, nil
}

func (f *Factory) validateDate(date time.Time) error {
	now := f.Clock.Now().In(date.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	bookingDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if bookingDay.Before(today) {
		return ErrDateInPast
	}
	return nil
}

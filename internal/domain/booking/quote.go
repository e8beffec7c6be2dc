package booking

import "errors"

var ErrInvalidQuoteInput = errors.New("invalid quote input")

// Quote is the immutable price breakdown handed to payment. Any change to the
// selection requires recomputation.
type Quote struct {
	venueAmount   Money
	platformFee   Money
	total         Money
	durationUnits int
}

// ComputeQuote prices a validated selection. Hourly bookings pay the hourly
// rate per selected slot; daily bookings pay the flat daily rate regardless
// of slots. The platform fee is a fixed per-booking charge, independent of
// duration and amount.
func ComputeQuote(bookingType Type, selection Selection, rates RateCard, platformFee Money) (Quote, error) {
	switch bookingType {
	case TypeHourly:
		units := selection.Count()
		if units <= 0 {
			return Quote{}, ErrInvalidQuoteInput
		}
		venueAmount := rates.Hourly.Times(units)
		return Quote{
			venueAmount:   venueAmount,
			platformFee:   platformFee,
			total:         venueAmount.Add(platformFee),
			durationUnits: units,
		}, nil
	case TypeDaily:
		return Quote{
			venueAmount:   rates.Daily,
			platformFee:   platformFee,
			total:         rates.Daily.Add(platformFee),
			durationUnits: 1,
		}, nil
	default:
		return Quote{}, ErrInvalidQuoteInput
	}
}

func (q Quote) VenueAmount() Money { return q.venueAmount }
func (q Quote) PlatformFee() Money { return q.platformFee }
func (q Quote) Total() Money       { return q.total }
func (q Quote) DurationUnits() int { return q.durationUnits }

package queries

import (
	"context"
	"log/slog"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVenueNotFound = errs.New("venue not found")

// VenueCalendar is the read-side bundle the slot generator consumes: the
// recurring weekly hours plus the hourly rate attached to each slot.
type VenueCalendar struct {
	VenueID         uuid.UUID
	Weekly          schedule.WeeklySchedule
	HourlyRatePaise int64
	Approved        bool
}

type ScheduleReadStore interface {
	GetVenueCalendar(ctx context.Context, venueID uuid.UUID) (*VenueCalendar, error)
	ListBlockoutsOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.Blockout, error)
	ListBookingsOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.ExistingBooking, error)
}

type AvailabilityQueries interface {
	DaySlots(ctx context.Context, venueID uuid.UUID, date time.Time) (*DaySlotsView, error)
}

type availabilityQueriesImpl struct {
	store     ScheduleReadStore
	generator schedule.Generator
	clock     clock.Clock
}

func NewAvailabilityQueries(store ScheduleReadStore, generator schedule.Generator, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:     store,
		generator: generator,
		clock:     clk,
	}
}

// DaySlots generates the slot board for one venue and date. A closed weekday
// yields an empty slot list, not an error. Missing exception data is
// interpreted as "no blockouts / no bookings" — observable in the logs, never
// surfaced as a failure.
func (q *availabilityQueriesImpl) DaySlots(ctx context.Context, venueID uuid.UUID, date time.Time) (*DaySlotsView, error) {
	cal, err := q.store.GetVenueCalendar(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Wrap(err, "failed to load venue calendar")
	}

	blockouts, err := q.store.ListBlockoutsOn(ctx, venueID, date)
	if err != nil {
		slog.Warn("no blockout data for date, treating as unblocked",
			"venue_id", venueID, "date", date.Format("2006-01-02"), "error", err.Error())
		blockouts = nil
	}

	bookings, err := q.store.ListBookingsOn(ctx, venueID, date)
	if err != nil {
		slog.Warn("no booking data for date, treating as unbooked",
			"venue_id", venueID, "date", date.Format("2006-01-02"), "error", err.Error())
		bookings = nil
	}

	slots := q.generator.DaySlots(venueID, cal.Weekly, blockouts, bookings, date, cal.HourlyRatePaise, q.clock.Now())

	view := &DaySlotsView{
		VenueID:          venueID,
		Date:             date.Format("2006-01-02"),
		SlotWidthMinutes: q.generator.SlotWidthMinutes(),
		Slots:            make([]SlotView, len(slots)),
	}
	for i, s := range slots {
		view.Slots[i] = SlotView{
			ID:         s.ID,
			StartTime:  s.Start.String(),
			EndTime:    s.End.String(),
			Status:     string(s.Status),
			PricePaise: s.PricePaise,
		}
	}
	return view, nil
}

package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleReadStore feeds the slot generator: recurring hours plus the
// date's exceptions, read fresh on every request so the board reflects
// confirmed bookings immediately.
type ScheduleReadStore struct {
	db *pgxpool.Pool
}

func NewScheduleReadStore(db *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const venueCalendarSQL = `
SELECT id, weekly_schedule, hourly_rate_paise, status
FROM venues
WHERE id = $1`

func (s *ScheduleReadStore) GetVenueCalendar(ctx context.Context, venueID uuid.UUID) (*queries.VenueCalendar, error) {
	var (
		cal        queries.VenueCalendar
		weeklyJSON []byte
		status     string
	)
	err := s.db.QueryRow(ctx, venueCalendarSQL, venueID).Scan(
		&cal.VenueID, &weeklyJSON, &cal.HourlyRatePaise, &status,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load venue calendar", err)
	}

	weekly, err := converter.WeeklyFromJSON(weeklyJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode weekly schedule", err)
	}
	cal.Weekly = weekly
	cal.Approved = venue.Status(status) == venue.StatusApproved
	return &cal, nil
}

const blockoutsOnSQL = `
SELECT id, start_date, end_date, start_minutes, end_minutes, reason, kind
FROM blockouts
WHERE venue_id = $1 AND start_date <= $2 AND end_date >= $2`

func (s *ScheduleReadStore) ListBlockoutsOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.Blockout, error) {
	rows, err := s.db.Query(ctx, blockoutsOnSQL, venueID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blockouts", err)
	}
	defer rows.Close()

	var blockouts []schedule.Blockout
	for rows.Next() {
		var (
			b            schedule.Blockout
			kind         string
			startMinutes *int
			endMinutes   *int
		)
		if err := rows.Scan(&b.ID, &b.StartDate, &b.EndDate, &startMinutes, &endMinutes, &b.Reason, &kind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blockout", err)
		}
		b.Start = converter.TimeOfDayPtr(startMinutes)
		b.End = converter.TimeOfDayPtr(endMinutes)
		b.Kind = schedule.BlockoutKind(kind)
		blockouts = append(blockouts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blockouts", err)
	}
	return blockouts, nil
}

const bookingsOnSQL = `
SELECT id, booking_date, start_minutes, end_minutes, status
FROM bookings
WHERE venue_id = $1 AND booking_date = $2 AND status = 'confirmed'`

func (s *ScheduleReadStore) ListBookingsOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.ExistingBooking, error) {
	rows, err := s.db.Query(ctx, bookingsOnSQL, venueID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []schedule.ExistingBooking
	for rows.Next() {
		var (
			b            schedule.ExistingBooking
			status       string
			startMinutes int
			endMinutes   int
		)
		if err := rows.Scan(&b.ID, &b.Date, &startMinutes, &endMinutes, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		b.Start = schedule.TimeOfDay(startMinutes)
		b.End = schedule.TimeOfDay(endMinutes)
		b.Status = schedule.BookingStatus(status)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return bookings, nil
}

package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSQL = `
SELECT b.id, b.venue_id, v.name, b.user_id, b.booking_date, b.booking_type,
       b.start_minutes, b.end_minutes, b.guest_count,
       b.contact_name, b.contact_email, b.contact_phone, b.special_requests,
       b.venue_amount_paise, b.platform_fee_paise, b.total_paise,
       b.status, b.payment_order_id, b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view         queries.BookingView
		date         time.Time
		startMinutes int
		endMinutes   int
	)
	err := s.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&view.ID, &view.VenueID, &view.VenueName, &view.UserID, &date, &view.BookingType,
		&startMinutes, &endMinutes, &view.GuestCount,
		&view.ContactName, &view.ContactEmail, &view.ContactPhone, &view.SpecialRequests,
		&view.VenueAmountPaise, &view.PlatformFeePaise, &view.TotalPaise,
		&view.Status, &view.PaymentOrderID, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.Date = date.Format("2006-01-02")
	view.StartTime = schedule.TimeOfDay(startMinutes).String()
	view.EndTime = schedule.TimeOfDay(endMinutes).String()
	return &view, nil
}

const listByUserSQL = `
SELECT b.id, b.venue_id, v.name, b.booking_date, b.booking_type,
       b.start_minutes, b.end_minutes, b.total_paise, b.status, b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
WHERE b.user_id = $1
ORDER BY b.booking_date DESC, b.start_minutes DESC`

func (s *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.listItems(ctx, listByUserSQL, userID)
}

const listByVenueSQL = `
SELECT b.id, b.venue_id, v.name, b.booking_date, b.booking_type,
       b.start_minutes, b.end_minutes, b.total_paise, b.status, b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
WHERE b.venue_id = $1
ORDER BY b.booking_date DESC, b.start_minutes DESC`

func (s *BookingReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.listItems(ctx, listByVenueSQL, venueID)
}

func (s *BookingReadStore) listItems(ctx context.Context, sql string, arg uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item         queries.BookingListItem
			date         time.Time
			startMinutes int
			endMinutes   int
		)
		if err := rows.Scan(
			&item.ID, &item.VenueID, &item.VenueName, &date, &item.BookingType,
			&startMinutes, &endMinutes, &item.TotalPaise, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		item.Date = date.Format("2006-01-02")
		item.StartTime = schedule.TimeOfDay(startMinutes).String()
		item.EndTime = schedule.TimeOfDay(endMinutes).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}

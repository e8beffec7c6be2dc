package repository

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const createPendingSQL = `
INSERT INTO bookings (
	id, venue_id, user_id, booking_date, booking_type,
	start_minutes, end_minutes, guest_count,
	contact_name, contact_email, contact_phone, special_requests,
	venue_amount_paise, platform_fee_paise, total_paise,
	status, payment_order_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 'pending', $16, now(), now())
RETURNING id`

func (r *BookingRepository) CreatePending(ctx context.Context, req *booking.Request, paymentOrderID string) (uuid.UUID, error) {
	var specialRequests *string
	if s := req.SpecialRequests(); s != "" {
		specialRequests = &s
	}

	quote := req.Quote()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createPendingSQL,
		req.ID(), req.VenueID(), req.UserID(), req.Date(), req.BookingType().String(),
		int(req.Start()), int(req.End()), req.GuestCount(),
		req.Contact().Name(), req.Contact().Email(), req.Contact().Phone(), specialRequests,
		quote.VenueAmount().Paise(), quote.PlatformFee().Paise(), quote.Total().Paise(),
		paymentOrderID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create pending booking", err)
	}
	return id, nil
}

const findBookingSQL = `
SELECT id, venue_id, user_id, booking_date, start_minutes, end_minutes,
       status, payment_order_id, total_paise
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snapshot     commands.BookingSnapshot
		startMinutes int
		endMinutes   int
		status       string
	)
	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&snapshot.ID, &snapshot.VenueID, &snapshot.UserID, &snapshot.Date,
		&startMinutes, &endMinutes, &status, &snapshot.PaymentOrderID, &snapshot.TotalPaise,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to find booking", err)
	}

	snapshot.Start = schedule.TimeOfDay(startMinutes)
	snapshot.End = schedule.TimeOfDay(endMinutes)
	snapshot.Status = schedule.BookingStatus(status)
	return &snapshot, nil
}

// confirmPaidSQL is the final atomic availability re-check: the pending
// booking is promoted only if no other confirmed booking overlaps its window.
// This statement is the single place a binding "slot is yours" guarantee can
// come from.
const confirmPaidSQL = `
UPDATE bookings b
SET status = 'confirmed', payment_id = $2, updated_at = now()
WHERE b.id = $1
  AND b.status = 'pending'
  AND NOT EXISTS (
	SELECT 1 FROM bookings o
	WHERE o.venue_id = b.venue_id
	  AND o.booking_date = b.booking_date
	  AND o.status = 'confirmed'
	  AND o.id <> b.id
	  AND o.start_minutes < b.end_minutes
	  AND b.start_minutes < o.end_minutes
  )`

func (r *BookingRepository) ConfirmPaid(ctx context.Context, id uuid.UUID, paymentID string) error {
	tag, err := r.db.Exec(ctx, confirmPaidSQL, id, paymentID)
	if err != nil {
		return wrapPgErr("failed to confirm booking", err)
	}
	if tag.RowsAffected() == 0 {
		// The guard clause lost the race: an overlapping confirmed booking
		// appeared between slot display and payment capture.
		return infra.WrapRepoErr("overlapping confirmed booking exists", nil, infra.KindConflict)
	}
	return nil
}

const listConfirmedOnSQL = `
SELECT id, booking_date, start_minutes, end_minutes
FROM bookings
WHERE venue_id = $1 AND booking_date = $2 AND status = 'confirmed'
ORDER BY start_minutes`

func (r *BookingRepository) ListConfirmedOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.ExistingBooking, error) {
	rows, err := r.db.Query(ctx, listConfirmedOnSQL, venueID, date)
	if err != nil {
		return nil, wrapPgErr("failed to list confirmed bookings", err)
	}
	defer rows.Close()

	var bookings []schedule.ExistingBooking
	for rows.Next() {
		var (
			b            schedule.ExistingBooking
			startMinutes int
			endMinutes   int
		)
		if err := rows.Scan(&b.ID, &b.Date, &startMinutes, &endMinutes); err != nil {
			return nil, wrapPgErr("failed to scan booking", err)
		}
		b.Start = schedule.TimeOfDay(startMinutes)
		b.End = schedule.TimeOfDay(endMinutes)
		b.Status = schedule.BookingConfirmed
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read bookings", err)
	}
	return bookings, nil
}

package commands

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/user"
	"venuebook/internal/domain/venue"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

type VenueSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Description     string
	City            string
	Sport           venue.SportKind
	Capacity        int
	HourlyRatePaise int64
	DailyRatePaise  int64
	Status          venue.Status
	Weekly          schedule.WeeklySchedule
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *VenueSnapshot) ToEntity() *venue.Venue {
	return venue.ReconstructVenue(
		s.ID, s.OwnerID,
		s.Name, s.Description, s.City,
		s.Sport, s.Capacity,
		booking.RateCard{
			Hourly: booking.NewMoney(s.HourlyRatePaise),
			Daily:  booking.NewMoney(s.DailyRatePaise),
		},
		s.Status, s.Weekly,
		s.CreatedAt, s.UpdatedAt,
	)
}

type BookingSnapshot struct {
	ID             uuid.UUID
	VenueID        uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	Start          schedule.TimeOfDay
	End            schedule.TimeOfDay
	Status         schedule.BookingStatus
	PaymentOrderID string
	TotalPaise     int64
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type VenueRepository interface {
	Create(ctx context.Context, v *venue.Venue) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status venue.Status) error
	ReplaceWeeklySchedule(ctx context.Context, id uuid.UUID, ws schedule.WeeklySchedule) error
}

type BlockoutRepository interface {
	Add(ctx context.Context, venueID uuid.UUID, b schedule.Blockout) (uuid.UUID, error)
	Remove(ctx context.Context, venueID, blockoutID uuid.UUID) error
	ListOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.Blockout, error)
}

type BookingRepository interface {
	// CreatePending inserts the hand-off record in pending state together
	// with its payment order reference.
	CreatePending(ctx context.Context, req *booking.Request, paymentOrderID string) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ConfirmPaid promotes a pending booking to confirmed. The statement
	// re-checks availability atomically; a lost race surfaces as
	// infra.KindConflict.
	ConfirmPaid(ctx context.Context, id uuid.UUID, paymentID string) error
	ListConfirmedOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.ExistingBooking, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// PaymentGateway is the external payment collaborator. Amounts are always in
// minor units.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount booking.Money, currency, receipt string, notes map[string]string) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
}

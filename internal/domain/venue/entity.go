package venue

import (
	"errors"
	"strings"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("venue name must not be empty")
	ErrInvalidCapacity = errors.New("venue capacity must be positive")
	ErrInvalidRates    = errors.New("venue rates must not be negative")
	ErrInvalidSport    = errors.New("invalid sport kind")
	ErrNotPending      = errors.New("venue is not pending review")
)

// Venue is an owner-listed bookable facility. New venues start pending and
// become publicly listable only after super-admin approval.
type Venue struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	city        string
	sport       SportKind
	capacity    int
	rates       booking.RateCard
	status      Status
	weekly      schedule.WeeklySchedule
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVenue(
	ownerID uuid.UUID,
	name, description, city string,
	sport SportKind,
	capacity int,
	rates booking.RateCard,
	weekly schedule.WeeklySchedule,
	now time.Time,
) (*Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !sport.IsValid() {
		return nil, ErrInvalidSport
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rates.Hourly.Paise() < 0 || rates.Daily.Paise() < 0 {
		return nil, ErrInvalidRates
	}
	if err := weekly.Validate(); err != nil {
		return nil, err
	}

	return &Venue{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: strings.TrimSpace(description),
		city:        strings.TrimSpace(city),
		sport:       sport,
		capacity:    capacity,
		rates:       rates,
		status:      StatusPending,
		weekly:      weekly,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructVenue(
	id, ownerID uuid.UUID,
	name, description, city string,
	sport SportKind,
	capacity int,
	rates booking.RateCard,
	status Status,
	weekly schedule.WeeklySchedule,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		city:        city,
		sport:       sport,
		capacity:    capacity,
		rates:       rates,
		status:      status,
		weekly:      weekly,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Venue) Approve(now time.Time) error {
	if v.status != StatusPending {
		return ErrNotPending
	}
	v.status = StatusApproved
	v.updatedAt = now
	return nil
}

func (v *Venue) Reject(now time.Time) error {
	if v.status != StatusPending {
		return ErrNotPending
	}
	v.status = StatusRejected
	v.updatedAt = now
	return nil
}

func (v *Venue) IsApproved() bool {
	return v.status == StatusApproved
}

func (v *Venue) IsOwnedBy(userID uuid.UUID) bool {
	return v.ownerID == userID
}

func (v *Venue) ID() uuid.UUID                   { return v.id }
func (v *Venue) OwnerID() uuid.UUID              { return v.ownerID }
func (v *Venue) Name() string                    { return v.name }
func (v *Venue) Description() string             { return v.description }
func (v *Venue) City() string                    { return v.city }
func (v *Venue) Sport() SportKind                { return v.sport }
func (v *Venue) Capacity() int                   { return v.capacity }
func (v *Venue) Rates() booking.RateCard         { return v.rates }
func (v *Venue) Status() Status                  { return v.status }
func (v *Venue) Weekly() schedule.WeeklySchedule { return v.weekly }
func (v *Venue) CreatedAt() time.Time            { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time            { return v.updatedAt }

// Spec projects the venue into what the booking factory needs.
func (v *Venue) Spec() booking.VenueSpec {
	return booking.VenueSpec{
		ID:       v.id,
		Capacity: v.capacity,
		Rates:    v.rates,
	}
}

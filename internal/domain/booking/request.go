package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrGuestCountInvalid         = errors.New("guest count must be at least 1")
	ErrGuestCountExceedsCapacity = errors.New("guest count exceeds venue capacity")
	ErrDateInPast                = errors.New("booking date cannot be in the past")
	ErrMissingContactName        = errors.New("contact name is required")
	ErrInvalidContactEmail       = errors.New("a valid contact email is required")
	ErrMissingContactPhone       = errors.New("contact phone is required")
	ErrEmptyHourlySelection      = errors.New("hourly booking requires a slot selection")
)

// Contact carries the booking's contact details. All three fields are
// mandatory.
type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrMissingContactName
	}

	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return Contact{}, ErrInvalidContactEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Contact{}, ErrMissingContactPhone
	}

	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

// Request is the finalized, immutable hand-off record for the payment and
// persistence collaborators. The engine never mutates it after construction.
type Request struct {
	id              uuid.UUID
	venueID         uuid.UUID
	userID          uuid.UUID
	date            time.Time
	bookingType     Type
	slotIDs         []uuid.UUID
	start           schedule.TimeOfDay
	end             schedule.TimeOfDay
	guestCount      int
	contact         Contact
	specialRequests string
	quote           Quote
}

func (r *Request) ID() uuid.UUID             { return r.id }
func (r *Request) VenueID() uuid.UUID        { return r.venueID }
func (r *Request) UserID() uuid.UUID         { return r.userID }
func (r *Request) Date() time.Time           { return r.date }
func (r *Request) BookingType() Type         { return r.bookingType }
func (r *Request) GuestCount() int           { return r.guestCount }
func (r *Request) Contact() Contact          { return r.contact }
func (r *Request) SpecialRequests() string   { return r.specialRequests }
func (r *Request) Quote() Quote              { return r.quote }
func (r *Request) Start() schedule.TimeOfDay { return r.start }
func (r *Request) End() schedule.TimeOfDay   { return r.end }

// SlotIDs is empty for daily bookings.
func (r *Request) SlotIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.slotIDs))
	copy(out, r.slotIDs)
	return out
}

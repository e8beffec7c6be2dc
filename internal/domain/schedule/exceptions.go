package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidBlockoutRange = errors.New("blockout start date must not be after end date")
	ErrInvalidBlockoutTimes = errors.New("blockout start time must be before end time")
)

type BlockoutKind string

const (
	BlockoutMaintenance BlockoutKind = "maintenance"
	BlockoutPersonal    BlockoutKind = "personal"
	BlockoutEvent       BlockoutKind = "event"
)

func (k BlockoutKind) IsValid() bool {
	switch k {
	case BlockoutMaintenance, BlockoutPersonal, BlockoutEvent:
		return true
	default:
		return false
	}
}

// Blockout is an owner-declared unavailability window. A nil Start/End pair
// marks the whole day unavailable for every date in [StartDate, EndDate].
type Blockout struct {
	ID        uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Start     *TimeOfDay
	End       *TimeOfDay
	Reason    string
	Kind      BlockoutKind
}

func (b Blockout) Validate() error {
	if dateAfter(b.StartDate, b.EndDate) {
		return ErrInvalidBlockoutRange
	}
	if b.Start != nil && b.End != nil && *b.Start >= *b.End {
		return ErrInvalidBlockoutTimes
	}
	return nil
}

// AppliesTo reports whether the blockout is active on the given calendar date.
func (b Blockout) AppliesTo(date time.Time) bool {
	return !dateAfter(b.StartDate, date) && !dateAfter(date, b.EndDate)
}

func (b Blockout) IsFullDay() bool {
	return b.Start == nil || b.End == nil
}

// BlocksInterval reports whether the blockout covers any part of the interval.
// Touching endpoints do not overlap.
func (b Blockout) BlocksInterval(start, end TimeOfDay) bool {
	if b.IsFullDay() {
		return true
	}
	return start < *b.End && *b.Start < end
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// ExistingBooking is the exception-set view of a booking already taken for a
// date. Only confirmed bookings occupy slots; pending and cancelled ones must
// not block availability.
type ExistingBooking struct {
	ID     uuid.UUID
	Date   time.Time
	Start  TimeOfDay
	End    TimeOfDay
	Status BookingStatus
}

func (e ExistingBooking) Occupies(date time.Time, start, end TimeOfDay) bool {
	if e.Status != BookingConfirmed {
		return false
	}
	if !sameDate(e.Date, date) {
		return false
	}
	return start < e.End && e.Start < end
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func dateAfter(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() > b.Year()
	}
	if a.Month() != b.Month() {
		return a.Month() > b.Month()
	}
	return a.Day() > b.Day()
}

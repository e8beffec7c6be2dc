package schedule

import (
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotPast      SlotStatus = "past"
)

// Slot is a derived, fixed-width bookable interval. Slots are generated fresh
// per query and never persisted; the ID is deterministic from
// (venueID, date, start) so repeated generation yields stable identifiers.
type Slot struct {
	ID         uuid.UUID
	Date       time.Time
	Start      TimeOfDay
	End        TimeOfDay
	Status     SlotStatus
	PricePaise int64
}

func (s Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

var slotNamespace = uuid.MustParse("3f1a6fd2-9d77-4b1c-8a5e-6b1f0c9d2e44")

// SlotID derives the stable slot identifier as a UUIDv5 over the generation
// coordinates.
func SlotID(venueID uuid.UUID, date time.Time, start TimeOfDay) uuid.UUID {
	key := venueID.String() + "/" + date.Format("2006-01-02") + "/" + start.String()
	return uuid.NewSHA1(slotNamespace, []byte(key))
}

const DefaultSlotWidthMinutes = 60

// Generator turns a weekly schedule plus the date's exception set into the
// ordered slot list for one day.
type Generator struct {
	slotWidthMinutes int
}

func NewGenerator(slotWidthMinutes int) Generator {
	if slotWidthMinutes <= 0 {
		slotWidthMinutes = DefaultSlotWidthMinutes
	}
	return Generator{slotWidthMinutes: slotWidthMinutes}
}

func (g Generator) SlotWidthMinutes() int {
	return g.slotWidthMinutes
}

// DaySlots partitions the day's open hours into consecutive slots and marks
// each with its status. Status precedence: past > booked > blocked >
// available. A closed weekday yields an empty list, which is a valid outcome
// rather than an error. Trailing remainders shorter than the slot width are
// dropped.
func (g Generator) DaySlots(
	venueID uuid.UUID,
	ws WeeklySchedule,
	blockouts []Blockout,
	bookings []ExistingBooking,
	date time.Time,
	hourlyRatePaise int64,
	now time.Time,
) []Slot {
	hours := ws.HoursFor(date.Weekday())
	if !hours.Open || hours.Start >= hours.End {
		return []Slot{}
	}

	slots := make([]Slot, 0, int(hours.End-hours.Start)/g.slotWidthMinutes)
	for start := hours.Start; start.AddMinutes(g.slotWidthMinutes) <= hours.End; start = start.AddMinutes(g.slotWidthMinutes) {
		end := start.AddMinutes(g.slotWidthMinutes)
		slots = append(slots, Slot{
			ID:         SlotID(venueID, date, start),
			Date:       date,
			Start:      start,
			End:        end,
			Status:     g.slotStatus(blockouts, bookings, date, start, end, now),
			PricePaise: hourlyRatePaise,
		})
	}
	return slots
}

func (g Generator) slotStatus(
	blockouts []Blockout,
	bookings []ExistingBooking,
	date time.Time,
	start, end TimeOfDay,
	now time.Time,
) SlotStatus {
	// A past slot is never actionable regardless of other state, and a booked
	// slot is a hard commitment that outranks an informational blockout.
	if !start.On(date).After(now) {
		return SlotPast
	}
	for _, b := range bookings {
		if b.Occupies(date, start, end) {
			return SlotBooked
		}
	}
	for _, b := range blockouts {
		if b.AppliesTo(date) && b.BlocksInterval(start, end) {
			return SlotBlocked
		}
	}
	return SlotAvailable
}

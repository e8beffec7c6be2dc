//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday in a future month relative to the fixed test clock.
var (
	slotDate  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	beforeDay = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func statuses(slots []schedule.Slot) []schedule.SlotStatus {
	out := make([]schedule.SlotStatus, len(slots))
	for i, s := range slots {
		out[i] = s.Status
	}
	return out
}

func TestGeneratorDaySlots(t *testing.T) {
	venueID := uuid.New()
	gen := schedule.NewGenerator(60)
	weekly := builder.OpenAllWeek("09:00", "17:00")

	t.Run("partitions open hours into consecutive slots", func(t *testing.T) {
		slots := gen.DaySlots(venueID, weekly, nil, nil, slotDate, 50000, beforeDay)
		require.Len(t, slots, 8)

		assert.Equal(t, mustTOD(t, "09:00"), slots[0].Start)
		assert.Equal(t, mustTOD(t, "10:00"), slots[0].End)
		assert.Equal(t, mustTOD(t, "16:00"), slots[7].Start)
		assert.Equal(t, mustTOD(t, "17:00"), slots[7].End)

		for i, s := range slots {
			assert.Equal(t, schedule.SlotAvailable, s.Status, "slot %d", i)
			assert.Equal(t, int64(50000), s.PricePaise)
			if i > 0 {
				assert.Equal(t, slots[i-1].End, s.Start)
			}
		}
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		first := gen.DaySlots(venueID, weekly, nil, nil, slotDate, 50000, beforeDay)
		second := gen.DaySlots(venueID, weekly, nil, nil, slotDate, 50000, beforeDay)
		assert.Empty(t, cmp.Diff(first, second))
		assert.Equal(t, schedule.SlotID(venueID, slotDate, mustTOD(t, "09:00")), first[0].ID)
	})

	t.Run("different venues get different slot ids", func(t *testing.T) {
		other := gen.DaySlots(uuid.New(), weekly, nil, nil, slotDate, 50000, beforeDay)
		mine := gen.DaySlots(venueID, weekly, nil, nil, slotDate, 50000, beforeDay)
		assert.NotEqual(t, mine[0].ID, other[0].ID)
	})

	t.Run("closed weekday yields empty list", func(t *testing.T) {
		closed := builder.ClosedOn(weekly, time.Monday)
		slots := gen.DaySlots(venueID, closed, nil, nil, slotDate, 50000, beforeDay)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("trailing partial slot is dropped", func(t *testing.T) {
		short := builder.OpenAllWeek("09:00", "12:30")
		slots := gen.DaySlots(venueID, short, nil, nil, slotDate, 50000, beforeDay)
		require.Len(t, slots, 3)
		assert.Equal(t, mustTOD(t, "12:00"), slots[2].End)
	})

	t.Run("custom slot width", func(t *testing.T) {
		wide := schedule.NewGenerator(90)
		slots := wide.DaySlots(venueID, builder.OpenAllWeek("09:00", "12:00"), nil, nil, slotDate, 50000, beforeDay)
		require.Len(t, slots, 2)
		assert.Equal(t, mustTOD(t, "10:30"), slots[0].End)
		assert.Equal(t, mustTOD(t, "12:00"), slots[1].End)
	})

	t.Run("non-positive width falls back to the default", func(t *testing.T) {
		g := schedule.NewGenerator(0)
		assert.Equal(t, schedule.DefaultSlotWidthMinutes, g.SlotWidthMinutes())
	})
}

func TestGeneratorSlotStatus(t *testing.T) {
	venueID := uuid.New()
	gen := schedule.NewGenerator(60)
	weekly := builder.OpenAllWeek("09:00", "14:00")

	t.Run("slots at or before now are past", func(t *testing.T) {
		now := mustTOD(t, "11:00").On(slotDate)
		slots := gen.DaySlots(venueID, weekly, nil, nil, slotDate, 50000, now)

		// 09:00 and 10:00 started in the past; 11:00 starts exactly now.
		assert.Equal(t, []schedule.SlotStatus{
			schedule.SlotPast, schedule.SlotPast, schedule.SlotPast,
			schedule.SlotAvailable, schedule.SlotAvailable,
		}, statuses(slots))
	})

	t.Run("confirmed bookings mark slots booked", func(t *testing.T) {
		bookings := []schedule.ExistingBooking{{
			ID:     uuid.New(),
			Date:   slotDate,
			Start:  mustTOD(t, "10:00"),
			End:    mustTOD(t, "12:00"),
			Status: schedule.BookingConfirmed,
		}}
		slots := gen.DaySlots(venueID, weekly, nil, bookings, slotDate, 50000, beforeDay)

		assert.Equal(t, []schedule.SlotStatus{
			schedule.SlotAvailable, schedule.SlotBooked, schedule.SlotBooked,
			schedule.SlotAvailable, schedule.SlotAvailable,
		}, statuses(slots))
	})

	t.Run("pending bookings do not block", func(t *testing.T) {
		bookings := []schedule.ExistingBooking{{
			ID:     uuid.New(),
			Date:   slotDate,
			Start:  mustTOD(t, "10:00"),
			End:    mustTOD(t, "12:00"),
			Status: schedule.BookingPending,
		}}
		slots := gen.DaySlots(venueID, weekly, nil, bookings, slotDate, 50000, beforeDay)
		for i, s := range slots {
			assert.Equal(t, schedule.SlotAvailable, s.Status, "slot %d", i)
		}
	})

	t.Run("timed blockout marks overlapping slots blocked", func(t *testing.T) {
		blockouts := []schedule.Blockout{{
			ID:        uuid.New(),
			StartDate: slotDate,
			EndDate:   slotDate,
			Start:     todPtr(t, "11:30"),
			End:       todPtr(t, "12:30"),
			Kind:      schedule.BlockoutMaintenance,
		}}
		slots := gen.DaySlots(venueID, weekly, blockouts, nil, slotDate, 50000, beforeDay)

		assert.Equal(t, []schedule.SlotStatus{
			schedule.SlotAvailable, schedule.SlotAvailable, schedule.SlotBlocked,
			schedule.SlotBlocked, schedule.SlotAvailable,
		}, statuses(slots))
	})

	t.Run("full-day blockout blocks the whole day", func(t *testing.T) {
		blockouts := []schedule.Blockout{{
			ID:        uuid.New(),
			StartDate: slotDate,
			EndDate:   slotDate,
			Kind:      schedule.BlockoutEvent,
		}}
		slots := gen.DaySlots(venueID, weekly, blockouts, nil, slotDate, 50000, beforeDay)
		for i, s := range slots {
			assert.Equal(t, schedule.SlotBlocked, s.Status, "slot %d", i)
		}
	})

	t.Run("blockout on another date has no effect", func(t *testing.T) {
		nextDay := slotDate.AddDate(0, 0, 1)
		blockouts := []schedule.Blockout{{
			ID:        uuid.New(),
			StartDate: nextDay,
			EndDate:   nextDay,
			Kind:      schedule.BlockoutPersonal,
		}}
		slots := gen.DaySlots(venueID, weekly, blockouts, nil, slotDate, 50000, beforeDay)
		for i, s := range slots {
			assert.Equal(t, schedule.SlotAvailable, s.Status, "slot %d", i)
		}
	})

	t.Run("booked outranks blocked, past outranks both", func(t *testing.T) {
		blockouts := []schedule.Blockout{{
			ID:        uuid.New(),
			StartDate: slotDate,
			EndDate:   slotDate,
			Kind:      schedule.BlockoutMaintenance,
		}}
		bookings := []schedule.ExistingBooking{{
			ID:     uuid.New(),
			Date:   slotDate,
			Start:  mustTOD(t, "11:00"),
			End:    mustTOD(t, "12:00"),
			Status: schedule.BookingConfirmed,
		}}
		now := mustTOD(t, "09:30").On(slotDate)
		slots := gen.DaySlots(venueID, weekly, blockouts, bookings, slotDate, 50000, now)

		assert.Equal(t, []schedule.SlotStatus{
			schedule.SlotPast, schedule.SlotBlocked, schedule.SlotBooked,
			schedule.SlotBlocked, schedule.SlotBlocked,
		}, statuses(slots))
	})
}

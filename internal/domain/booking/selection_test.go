//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mustTOD(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

// makeSlots builds consecutive hour-wide slots starting at 09:00 with the
// given statuses.
func makeSlots(t *testing.T, slotStatuses ...schedule.SlotStatus) []schedule.Slot {
	t.Helper()

	slots := make([]schedule.Slot, len(slotStatuses))
	start := mustTOD(t, "09:00")
	for i, status := range slotStatuses {
		slots[i] = schedule.Slot{
			ID:         uuid.New(),
			Date:       testDate,
			Start:      start,
			End:        start.AddMinutes(60),
			Status:     status,
			PricePaise: 50000,
		}
		start = start.AddMinutes(60)
	}
	return slots
}

func available(n int) []schedule.SlotStatus {
	out := make([]schedule.SlotStatus, n)
	for i := range out {
		out[i] = schedule.SlotAvailable
	}
	return out
}

func TestNewSelection(t *testing.T) {
	t.Run("empty candidate list is a valid empty selection", func(t *testing.T) {
		sel, err := booking.NewSelection(nil, makeSlots(t, available(3)...))
		require.NoError(t, err)
		assert.True(t, sel.IsEmpty())
		assert.Equal(t, 0, sel.Count())

		_, _, ok := sel.Span()
		assert.False(t, ok)
	})

	t.Run("single available slot", func(t *testing.T) {
		slots := makeSlots(t, available(3)...)
		sel, err := booking.NewSelection([]uuid.UUID{slots[1].ID}, slots)
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Count())

		start, end, ok := sel.Span()
		require.True(t, ok)
		assert.Equal(t, mustTOD(t, "10:00"), start)
		assert.Equal(t, mustTOD(t, "11:00"), end)
	})

	t.Run("order of candidate ids does not matter", func(t *testing.T) {
		slots := makeSlots(t, available(4)...)
		ids := []uuid.UUID{slots[2].ID, slots[0].ID, slots[1].ID}

		sel, err := booking.NewSelection(ids, slots)
		require.NoError(t, err)
		assert.Equal(t, 3, sel.Count())
		assert.Equal(t, []uuid.UUID{slots[0].ID, slots[1].ID, slots[2].ID}, sel.SlotIDs())

		start, end, ok := sel.Span()
		require.True(t, ok)
		assert.Equal(t, mustTOD(t, "09:00"), start)
		assert.Equal(t, mustTOD(t, "12:00"), end)
	})

	t.Run("unknown slot id", func(t *testing.T) {
		_, err := booking.NewSelection([]uuid.UUID{uuid.New()}, makeSlots(t, available(3)...))
		assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
	})

	t.Run("non-available slot", func(t *testing.T) {
		for _, status := range []schedule.SlotStatus{schedule.SlotBooked, schedule.SlotBlocked, schedule.SlotPast} {
			slots := makeSlots(t, schedule.SlotAvailable, status)
			_, err := booking.NewSelection([]uuid.UUID{slots[1].ID}, slots)
			assert.ErrorIs(t, err, booking.ErrSlotUnavailable, string(status))
		}
	})

	t.Run("gap in the selection", func(t *testing.T) {
		slots := makeSlots(t, available(3)...)
		_, err := booking.NewSelection([]uuid.UUID{slots[0].ID, slots[2].ID}, slots)
		assert.ErrorIs(t, err, booking.ErrNonContiguousSelection)
	})
}

func TestSelectionExtend(t *testing.T) {
	slots := makeSlots(t, available(5)...)

	base := func(t *testing.T) booking.Selection {
		t.Helper()
		sel, err := booking.NewSelection([]uuid.UUID{slots[2].ID}, slots)
		require.NoError(t, err)
		return sel
	}

	t.Run("extend after the last slot", func(t *testing.T) {
		sel, err := base(t).Extend(slots[3].ID, slots)
		require.NoError(t, err)

		start, end, ok := sel.Span()
		require.True(t, ok)
		assert.Equal(t, mustTOD(t, "11:00"), start)
		assert.Equal(t, mustTOD(t, "13:00"), end)
	})

	t.Run("extend before the first slot", func(t *testing.T) {
		sel, err := base(t).Extend(slots[1].ID, slots)
		require.NoError(t, err)

		start, end, ok := sel.Span()
		require.True(t, ok)
		assert.Equal(t, mustTOD(t, "10:00"), start)
		assert.Equal(t, mustTOD(t, "12:00"), end)
	})

	t.Run("detached slot is rejected", func(t *testing.T) {
		_, err := base(t).Extend(slots[0].ID, slots)
		assert.ErrorIs(t, err, booking.ErrNonContiguousSelection)
	})

	t.Run("unavailable neighbor is rejected", func(t *testing.T) {
		mixed := makeSlots(t, schedule.SlotAvailable, schedule.SlotBooked)
		sel, err := booking.NewSelection([]uuid.UUID{mixed[0].ID}, mixed)
		require.NoError(t, err)

		_, err = sel.Extend(mixed[1].ID, mixed)
		assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
	})

	t.Run("extending an empty selection starts one", func(t *testing.T) {
		var sel booking.Selection
		extended, err := sel.Extend(slots[0].ID, slots)
		require.NoError(t, err)
		assert.Equal(t, 1, extended.Count())
	})
}

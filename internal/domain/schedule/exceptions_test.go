//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBlockoutValidate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("valid timed blockout", func(t *testing.T) {
		b := schedule.Blockout{
			StartDate: day,
			EndDate:   day,
			Start:     todPtr(t, "10:00"),
			End:       todPtr(t, "12:00"),
			Kind:      schedule.BlockoutMaintenance,
		}
		assert.NoError(t, b.Validate())
	})

	t.Run("valid full-day range", func(t *testing.T) {
		b := schedule.Blockout{StartDate: day, EndDate: day.AddDate(0, 0, 3)}
		assert.NoError(t, b.Validate())
		assert.True(t, b.IsFullDay())
	})

	t.Run("start date after end date", func(t *testing.T) {
		b := schedule.Blockout{StartDate: day.AddDate(0, 0, 1), EndDate: day}
		assert.ErrorIs(t, b.Validate(), schedule.ErrInvalidBlockoutRange)
	})

	t.Run("inverted times", func(t *testing.T) {
		b := schedule.Blockout{
			StartDate: day,
			EndDate:   day,
			Start:     todPtr(t, "12:00"),
			End:       todPtr(t, "10:00"),
		}
		assert.ErrorIs(t, b.Validate(), schedule.ErrInvalidBlockoutTimes)
	})

	t.Run("equal times", func(t *testing.T) {
		b := schedule.Blockout{
			StartDate: day,
			EndDate:   day,
			Start:     todPtr(t, "10:00"),
			End:       todPtr(t, "10:00"),
		}
		assert.ErrorIs(t, b.Validate(), schedule.ErrInvalidBlockoutTimes)
	})
}

func TestBlockoutAppliesTo(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	b := schedule.Blockout{StartDate: start, EndDate: end}

	assert.False(t, b.AppliesTo(start.AddDate(0, 0, -1)))
	assert.True(t, b.AppliesTo(start))
	assert.True(t, b.AppliesTo(start.AddDate(0, 0, 1)))
	assert.True(t, b.AppliesTo(end))
	assert.False(t, b.AppliesTo(end.AddDate(0, 0, 1)))
}

func TestBlockoutBlocksInterval(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	timed := schedule.Blockout{
		StartDate: day,
		EndDate:   day,
		Start:     todPtr(t, "10:00"),
		End:       todPtr(t, "12:00"),
	}

	t.Run("overlapping interval", func(t *testing.T) {
		assert.True(t, timed.BlocksInterval(mustTOD(t, "11:00"), mustTOD(t, "13:00")))
		assert.True(t, timed.BlocksInterval(mustTOD(t, "09:30"), mustTOD(t, "10:30")))
		assert.True(t, timed.BlocksInterval(mustTOD(t, "10:30"), mustTOD(t, "11:00")))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		assert.False(t, timed.BlocksInterval(mustTOD(t, "09:00"), mustTOD(t, "10:00")))
		assert.False(t, timed.BlocksInterval(mustTOD(t, "12:00"), mustTOD(t, "13:00")))
	})

	t.Run("full-day blocks everything", func(t *testing.T) {
		fullDay := schedule.Blockout{StartDate: day, EndDate: day}
		assert.True(t, fullDay.BlocksInterval(mustTOD(t, "00:00"), mustTOD(t, "01:00")))
		assert.True(t, fullDay.BlocksInterval(mustTOD(t, "22:00"), mustTOD(t, "23:00")))
	})
}

func TestExistingBookingOccupies(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	confirmed := schedule.ExistingBooking{
		ID:     uuid.New(),
		Date:   day,
		Start:  mustTOD(t, "10:00"),
		End:    mustTOD(t, "12:00"),
		Status: schedule.BookingConfirmed,
	}

	t.Run("confirmed booking occupies overlapping interval", func(t *testing.T) {
		assert.True(t, confirmed.Occupies(day, mustTOD(t, "10:00"), mustTOD(t, "11:00")))
		assert.True(t, confirmed.Occupies(day, mustTOD(t, "11:30"), mustTOD(t, "12:30")))
	})

	t.Run("touching intervals do not occupy", func(t *testing.T) {
		assert.False(t, confirmed.Occupies(day, mustTOD(t, "09:00"), mustTOD(t, "10:00")))
		assert.False(t, confirmed.Occupies(day, mustTOD(t, "12:00"), mustTOD(t, "13:00")))
	})

	t.Run("other dates do not occupy", func(t *testing.T) {
		assert.False(t, confirmed.Occupies(day.AddDate(0, 0, 1), mustTOD(t, "10:00"), mustTOD(t, "11:00")))
	})

	t.Run("only confirmed bookings occupy", func(t *testing.T) {
		for _, status := range []schedule.BookingStatus{schedule.BookingPending, schedule.BookingCancelled} {
			b := confirmed
			b.Status = status
			assert.False(t, b.Occupies(day, mustTOD(t, "10:00"), mustTOD(t, "11:00")), string(status))
		}
	})
}

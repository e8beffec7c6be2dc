//go:build unit

package request_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/schedule"
	reqdto "venuebook/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWeeklySchedule(t *testing.T) {
	t.Run("maps weekday names case-insensitively", func(t *testing.T) {
		ws, err := reqdto.ToWeeklySchedule(map[string]reqdto.DayHoursDTO{
			"Monday":  {Open: true, Start: "09:00", End: "17:00"},
			"tuesday": {Open: false},
		})
		require.NoError(t, err)

		assert.True(t, ws.HoursFor(time.Monday).Open)
		assert.False(t, ws.HoursFor(time.Tuesday).Open)
	})

	t.Run("rejects unknown weekday keys", func(t *testing.T) {
		_, err := reqdto.ToWeeklySchedule(map[string]reqdto.DayHoursDTO{
			"funday": {Open: true, Start: "09:00", End: "17:00"},
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
	})

	t.Run("rejects malformed times on open days", func(t *testing.T) {
		_, err := reqdto.ToWeeklySchedule(map[string]reqdto.DayHoursDTO{
			"monday": {Open: true, Start: "9:5", End: "17:00"},
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
	})
}

func TestAddBlockoutRequestToDomain(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("full-day blockout when both times are absent", func(t *testing.T) {
		req := reqdto.AddBlockoutRequest{
			StartDate: "2026-03-02",
			EndDate:   "2026-03-03",
			Reason:    "pitch repair",
			Kind:      "maintenance",
		}
		b, err := req.ToDomain()
		require.NoError(t, err)

		assert.Nil(t, b.Start)
		assert.Nil(t, b.End)
	})

	t.Run("timed blockout when both times are present", func(t *testing.T) {
		req := reqdto.AddBlockoutRequest{
			StartDate: "2026-03-02",
			EndDate:   "2026-03-02",
			StartTime: str("09:00"),
			EndTime:   str("11:00"),
			Reason:    "coaching session",
			Kind:      "event",
		}
		b, err := req.ToDomain()
		require.NoError(t, err)

		require.NotNil(t, b.Start)
		require.NotNil(t, b.End)
		assert.Equal(t, "09:00", b.Start.String())
		assert.Equal(t, "11:00", b.End.String())
	})

	t.Run("one-sided time pair is invalid, not full-day", func(t *testing.T) {
		cases := []struct {
			name string
			req  reqdto.AddBlockoutRequest
		}{
			{"start only", reqdto.AddBlockoutRequest{
				StartDate: "2026-03-02", EndDate: "2026-03-02",
				StartTime: str("09:00"),
				Reason:    "pitch repair", Kind: "maintenance",
			}},
			{"end only", reqdto.AddBlockoutRequest{
				StartDate: "2026-03-02", EndDate: "2026-03-02",
				EndTime: str("11:00"),
				Reason:  "pitch repair", Kind: "maintenance",
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.req.ToDomain()
				assert.ErrorIs(t, err, schedule.ErrInvalidBlockoutTimes)
			})
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		req := reqdto.AddBlockoutRequest{
			StartDate: "2026-03-03",
			EndDate:   "2026-03-02",
			Reason:    "pitch repair",
			Kind:      "maintenance",
		}
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, schedule.ErrInvalidBlockoutRange)
	})
}

package request

import (
	"fmt"
	"strings"
	"time"

	"venuebook/internal/domain/schedule"
)

type DayHoursDTO struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type RegisterVenueRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Description     string                 `json:"description"`
	City            string                 `json:"city" binding:"required"`
	Sport           string                 `json:"sport" binding:"required,oneof=cricket_box football badminton multi_sport"`
	Capacity        int                    `json:"capacity" binding:"required,min=1"`
	HourlyRatePaise int64                  `json:"hourly_rate_paise" binding:"required,min=0"`
	DailyRatePaise  int64                  `json:"daily_rate_paise" binding:"required,min=0"`
	Weekly          map[string]DayHoursDTO `json:"weekly_schedule" binding:"required"`
}

type UpdateScheduleRequest struct {
	Weekly map[string]DayHoursDTO `json:"weekly_schedule" binding:"required"`
}

type AddBlockoutRequest struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    string  `json:"reason" binding:"required"`
	Kind      string  `json:"kind" binding:"required,oneof=maintenance personal event"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ToWeeklySchedule converts the wire form (lowercase weekday names, "HH:MM"
// times) into the domain schedule. Unknown weekday keys are rejected by
// returning the zero schedule with the parse error.
func ToWeeklySchedule(weekly map[string]DayHoursDTO) (schedule.WeeklySchedule, error) {
	ws := make(schedule.WeeklySchedule, len(weekly))
	for name, dto := range weekly {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, schedule.ErrInvalidWeekday)
		}
		hours := schedule.DayHours{Open: dto.Open}
		if dto.Open {
			start, err := schedule.ParseTimeOfDay(dto.Start)
			if err != nil {
				return nil, err
			}
			end, err := schedule.ParseTimeOfDay(dto.End)
			if err != nil {
				return nil, err
			}
			hours.Start, hours.End = start, end
		}
		if err := hours.Validate(); err != nil {
			return nil, err
		}
		ws[day] = hours
	}
	return ws, nil
}

func (r AddBlockoutRequest) ToDomain() (schedule.Blockout, error) {
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return schedule.Blockout{}, err
	}
	endDate, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return schedule.Blockout{}, err
	}

	b := schedule.Blockout{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    strings.TrimSpace(r.Reason),
		Kind:      schedule.BlockoutKind(r.Kind),
	}
	// A timed blockout needs both ends; one-sided input must not silently
	// widen into a full-day block.
	if (r.StartTime == nil) != (r.EndTime == nil) {
		return schedule.Blockout{}, schedule.ErrInvalidBlockoutTimes
	}
	if r.StartTime != nil && r.EndTime != nil {
		start, err := schedule.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return schedule.Blockout{}, err
		}
		end, err := schedule.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return schedule.Blockout{}, err
		}
		b.Start, b.End = &start, &end
	}

	if err := b.Validate(); err != nil {
		return schedule.Blockout{}, err
	}
	return b, nil
}

package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidDayHours  = errors.New("open hours must start before they end")
)

// TimeOfDay is a minute-resolution wall-clock time with no timezone; it is
// always interpreted in the venue's local time.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses the zero-padded "HH:MM" form used on the wire and in
// storage. Anything looser ("9:5", trailing characters) is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeOfDay
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeOfDay
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On anchors the wall-clock time to the given date, in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// DayHours is one weekday's recurring open-hours entry.
type DayHours struct {
	Open  bool
	Start TimeOfDay
	End   TimeOfDay
}

func (d DayHours) Validate() error {
	if d.Open && d.Start >= d.End {
		return ErrInvalidDayHours
	}
	return nil
}

// WeeklySchedule maps every weekday to its open-hours entry. Missing weekdays
// are treated as closed.
type WeeklySchedule map[time.Weekday]DayHours

func (ws WeeklySchedule) Validate() error {
	for day, hours := range ws {
		if err := hours.Validate(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

func (ws WeeklySchedule) HoursFor(day time.Weekday) DayHours {
	return ws[day]
}

//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/venue"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	City            string
	Sport           venue.SportKind
	Capacity        int
	HourlyRatePaise int64
	DailyRatePaise  int64
	Status          venue.Status
	Weekly          schedule.WeeklySchedule
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Test Cricket Box",
		City:            "Mumbai",
		Sport:           venue.SportCricketBox,
		Capacity:        20,
		HourlyRatePaise: 50000,
		DailyRatePaise:  500000,
		Status:          venue.StatusApproved,
		Weekly:          OpenAllWeek("09:00", "22:00"),
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *VenueBuilder) WithStatus(status venue.Status) *VenueBuilder {
	b.Status = status
	return b
}

func (b *VenueBuilder) WithCapacity(capacity int) *VenueBuilder {
	b.Capacity = capacity
	return b
}

func (b *VenueBuilder) WithWeekly(ws schedule.WeeklySchedule) *VenueBuilder {
	b.Weekly = ws
	return b
}

func (b *VenueBuilder) BuildSnapshot() *commands.VenueSnapshot {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &commands.VenueSnapshot{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		Description:     "A test venue",
		City:            b.City,
		Sport:           b.Sport,
		Capacity:        b.Capacity,
		HourlyRatePaise: b.HourlyRatePaise,
		DailyRatePaise:  b.DailyRatePaise,
		Status:          b.Status,
		Weekly:          b.Weekly,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *VenueBuilder) BuildEntity() *venue.Venue {
	return b.BuildSnapshot().ToEntity()
}

func (b *VenueBuilder) Rates() booking.RateCard {
	return booking.RateCard{
		Hourly: booking.NewMoney(b.HourlyRatePaise),
		Daily:  booking.NewMoney(b.DailyRatePaise),
	}
}

// OpenAllWeek builds a weekly schedule with identical hours every day.
func OpenAllWeek(start, end string) schedule.WeeklySchedule {
	s, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := schedule.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}

	ws := make(schedule.WeeklySchedule, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		ws[day] = schedule.DayHours{Open: true, Start: s, End: e}
	}
	return ws
}

// ClosedOn returns a copy of the schedule with the given weekday closed.
func ClosedOn(ws schedule.WeeklySchedule, day time.Weekday) schedule.WeeklySchedule {
	out := make(schedule.WeeklySchedule, len(ws))
	for d, h := range ws {
		out[d] = h
	}
	out[day] = schedule.DayHours{}
	return out
}

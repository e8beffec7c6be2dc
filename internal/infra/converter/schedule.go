package converter

import (
	"encoding/json"
	"strings"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
)

// Weekly schedules are stored as a JSONB document keyed by lowercase weekday
// name, matching the wire form:
//
//	{"monday": {"open": true, "start": "09:00", "end": "22:00"}, ...}
type dayHoursDoc struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func WeeklyToJSON(ws schedule.WeeklySchedule) ([]byte, error) {
	doc := make(map[string]dayHoursDoc, len(weekdayOrder))
	for _, day := range weekdayOrder {
		hours := ws.HoursFor(day)
		entry := dayHoursDoc{Open: hours.Open}
		if hours.Open {
			entry.Start = hours.Start.String()
			entry.End = hours.End.String()
		}
		doc[strings.ToLower(day.String())] = entry
	}
	return json.Marshal(doc)
}

func WeeklyFromJSON(data []byte) (schedule.WeeklySchedule, error) {
	var doc map[string]dayHoursDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(err, "malformed weekly schedule document")
	}

	ws := make(schedule.WeeklySchedule, len(weekdayOrder))
	for _, day := range weekdayOrder {
		entry, ok := doc[strings.ToLower(day.String())]
		if !ok || !entry.Open {
			ws[day] = schedule.DayHours{}
			continue
		}
		start, err := schedule.ParseTimeOfDay(entry.Start)
		if err != nil {
			return nil, errs.Wrap(err, "malformed weekly schedule start time")
		}
		end, err := schedule.ParseTimeOfDay(entry.End)
		if err != nil {
			return nil, errs.Wrap(err, "malformed weekly schedule end time")
		}
		ws[day] = schedule.DayHours{Open: true, Start: start, End: end}
	}
	return ws, nil
}

// WeeklyViewFromJSON re-shapes a stored weekly document into the read-side
// view map without round-tripping through the domain type.
func WeeklyViewFromJSON(data []byte) (map[string]queries.DayHoursView, error) {
	var doc map[string]dayHoursDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(err, "malformed weekly schedule document")
	}

	view := make(map[string]queries.DayHoursView, len(doc))
	for day, entry := range doc {
		view[day] = queries.DayHoursView{Open: entry.Open, Start: entry.Start, End: entry.End}
	}
	return view, nil
}

// MinutesPtr converts an optional TimeOfDay for nullable storage columns.
func MinutesPtr(t *schedule.TimeOfDay) *int {
	if t == nil {
		return nil
	}
	m := int(*t)
	return &m
}

func TimeOfDayPtr(minutes *int) *schedule.TimeOfDay {
	if minutes == nil {
		return nil
	}
	t := schedule.TimeOfDay(*minutes)
	return &t
}

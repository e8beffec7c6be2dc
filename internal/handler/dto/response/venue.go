package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayHoursResponse struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type VenueResponse struct {
	ID              uuid.UUID                   `json:"id"`
	OwnerID         uuid.UUID                   `json:"owner_id"`
	Name            string                      `json:"name"`
	Description     string                      `json:"description"`
	City            string                      `json:"city"`
	Sport           string                      `json:"sport"`
	Capacity        int                         `json:"capacity"`
	HourlyRatePaise int64                       `json:"hourly_rate_paise"`
	DailyRatePaise  int64                       `json:"daily_rate_paise"`
	Status          string                      `json:"status"`
	Weekly          map[string]DayHoursResponse `json:"weekly_schedule"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

type VenueListResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	Sport           string    `json:"sport"`
	Capacity        int       `json:"capacity"`
	HourlyRatePaise int64     `json:"hourly_rate_paise"`
	DailyRatePaise  int64     `json:"daily_rate_paise"`
}

type BlockoutResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	Reason    string    `json:"reason"`
	Kind      string    `json:"kind"`
}

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	PricePaise int64     `json:"price_paise"`
}

type DaySlotsResponse struct {
	VenueID          uuid.UUID      `json:"venue_id"`
	Date             string         `json:"date"`
	SlotWidthMinutes int            `json:"slot_width_minutes"`
	Slots            []SlotResponse `json:"slots"`
}

func FromVenueView(view *queries.VenueView) (*VenueResponse, error) {
	var resp VenueResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromVenueListItems(items []*queries.VenueListItem) ([]*VenueListResponse, error) {
	resp := make([]*VenueListResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBlockoutViews(views []*queries.BlockoutView) ([]*BlockoutResponse, error) {
	resp := make([]*BlockoutResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromDaySlotsView(view *queries.DaySlotsView) (*DaySlotsResponse, error) {
	var resp DaySlotsResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

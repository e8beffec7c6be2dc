package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type DayHoursView struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type VenueView struct {
	ID              uuid.UUID               `json:"id"`
	OwnerID         uuid.UUID               `json:"owner_id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	City            string                  `json:"city"`
	Sport           string                  `json:"sport"`
	Capacity        int                     `json:"capacity"`
	HourlyRatePaise int64                   `json:"hourly_rate_paise"`
	DailyRatePaise  int64                   `json:"daily_rate_paise"`
	Status          string                  `json:"status"`
	Weekly          map[string]DayHoursView `json:"weekly_schedule"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type VenueListItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	Sport           string    `json:"sport"`
	Capacity        int       `json:"capacity"`
	HourlyRatePaise int64     `json:"hourly_rate_paise"`
	DailyRatePaise  int64     `json:"daily_rate_paise"`
}

type SlotView struct {
	ID         uuid.UUID `json:"id"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	PricePaise int64     `json:"price_paise"`
}

type DaySlotsView struct {
	VenueID          uuid.UUID  `json:"venue_id"`
	Date             string     `json:"date"`
	SlotWidthMinutes int        `json:"slot_width_minutes"`
	Slots            []SlotView `json:"slots"`
}

type BlockoutView struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	Reason    string    `json:"reason"`
	Kind      string    `json:"kind"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	VenueID          uuid.UUID `json:"venue_id"`
	VenueName        string    `json:"venue_name"`
	UserID           uuid.UUID `json:"user_id"`
	Date             string    `json:"date"`
	BookingType      string    `json:"booking_type"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	GuestCount       int       `json:"guest_count"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	SpecialRequests  *string   `json:"special_requests,omitempty"`
	VenueAmountPaise int64     `json:"venue_amount_paise"`
	PlatformFeePaise int64     `json:"platform_fee_paise"`
	TotalPaise       int64     `json:"total_paise"`
	Status           string    `json:"status"`
	PaymentOrderID   *string   `json:"payment_order_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	Date        string    `json:"date"`
	BookingType string    `json:"booking_type"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	TotalPaise  int64     `json:"total_paise"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

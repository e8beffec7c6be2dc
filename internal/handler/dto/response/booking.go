package response

import (
	"time"

	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
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

type PaymentOrderResponse struct {
	OrderID    string `json:"order_id"`
	TotalPaise int64  `json:"total_paise"`
	Currency   string `json:"currency"`
}

type CreateBookingResponse struct {
	Booking      *BookingResponse     `json:"booking"`
	PaymentOrder PaymentOrderResponse `json:"payment_order"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItems(items []*queries.BookingListItem) ([]*BookingListResponse, error) {
	resp := make([]*BookingListResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromCreateBookingResult(result *commands.CreateBookingResult) (*CreateBookingResponse, error) {
	bookingResp, err := FromBookingView(result.Booking)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResponse{
		Booking: bookingResp,
		PaymentOrder: PaymentOrderResponse{
			OrderID:    result.PaymentOrder.OrderID,
			TotalPaise: result.PaymentOrder.TotalPaise,
			Currency:   result.PaymentOrder.Currency,
		},
	}, nil
}

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ContactDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type CreateBookingRequest struct {
	VenueID         uuid.UUID   `json:"venue_id" binding:"required"`
	Date            string      `json:"date" binding:"required"`
	BookingType     string      `json:"booking_type" binding:"required,oneof=hourly daily"`
	SlotIDs         []uuid.UUID `json:"slot_ids,omitempty"`
	GuestCount      int         `json:"guest_count" binding:"required,min=1"`
	Contact         ContactDTO  `json:"contact" binding:"required"`
	SpecialRequests *string     `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.Date, loc)
}

func (r CreateBookingRequest) GetSpecialRequests() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialRequests)
}

type ConfirmPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

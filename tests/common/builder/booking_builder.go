//go:build unit || e2e

package builder

import (
	"time"

	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	UserID      uuid.UUID
	Date        string
	BookingType string
	SlotIDs     []uuid.UUID
	GuestCount  int
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		VenueID:     uuid.New(),
		UserID:      uuid.New(),
		Date:        "2026-03-02",
		BookingType: "hourly",
		SlotIDs:     []uuid.UUID{uuid.New(), uuid.New()},
		GuestCount:  10,
		Status:      "pending",
	}
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithSlotIDs(ids ...uuid.UUID) *BookingBuilder {
	b.SlotIDs = ids
	return b
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:     b.VenueID,
		Date:        b.Date,
		BookingType: b.BookingType,
		SlotIDs:     b.SlotIDs,
		GuestCount:  b.GuestCount,
		Contact: reqdto.ContactDTO{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Phone: "+91-9876543210",
		},
	}
}

func (b *BookingBuilder) BuildConfirmDTO() reqdto.ConfirmPaymentRequest {
	return reqdto.ConfirmPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz789",
		RazorpaySignature: "c2lnbmF0dXJl",
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		VenueID:          b.VenueID,
		VenueName:        "Test Cricket Box",
		UserID:           b.UserID,
		Date:             b.Date,
		BookingType:      b.BookingType,
		StartTime:        "10:00",
		EndTime:          "12:00",
		GuestCount:       b.GuestCount,
		ContactName:      "Ravi Kumar",
		ContactEmail:     "ravi@example.com",
		ContactPhone:     "+91-9876543210",
		VenueAmountPaise: 100000,
		PlatformFeePaise: 3500,
		TotalPaise:       103500,
		Status:           b.Status,
		CreatedAt:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

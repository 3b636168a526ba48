package model

import "time"

type Ticket struct {
	DTO
	TicketCode    string    `gorm:"size:20;uniqueIndex" json:"ticketCode"` // DDMMYY-XXX-XXXXXX
	EventId       uint      `gorm:"not null;index" json:"eventId"`
	EventKind     string    `gorm:"size:20;not null" json:"eventKind"`
	UnitPrice     float64   `gorm:"not null" json:"unitPrice"`
	ProcessingFee float64   `gorm:"not null" json:"processingFee"` // unitPrice * 8%
	SeatNumber    *string   `gorm:"size:20" json:"seatNumber,omitempty"`
	SeatTier      string    `gorm:"size:50;not null;default:'GA'" json:"seatTier"`
	PaymentToken  string    `gorm:"size:100;not null" json:"-"`
	Status        string    `gorm:"size:20;not null;default:'ISSUED'" json:"status"`
	IssuedAt      time.Time `json:"issuedAt"`

	// Buyer: customer đăng nhập HOẶC guest (name + email), không bao giờ cả hai
	CustomerId *uint  `gorm:"default:null" json:"customerId,omitempty"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`

	Event    Event    `gorm:"foreignKey:EventId" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerId;constraint:OnDelete:SET NULL" json:"-"`
}

// CreateBookingInput là request duy nhất của subsystem đặt vé.
// Seat-based kinds gửi seatNumbers, tier-based kinds gửi tier.
type CreateBookingInput struct {
	EventKind    string   `json:"eventKind" validate:"required"`
	EventCode    string   `json:"eventId" validate:"required"`
	UnitPrice    float64  `json:"price" validate:"required,gt=0"`
	PaymentToken string   `json:"paymentToken"`
	CustomerId   *uint    `json:"-"`
	GuestName    string   `json:"guestName"`
	GuestEmail   string   `json:"guestEmail" validate:"omitempty,email"`
	SeatNumbers  []string `json:"seatNumbers"`
	Tier         string   `json:"tier"`
}

type TicketSummary struct {
	TicketCode string `json:"ticketCode"`
	SeatNumber string `json:"seatNumber,omitempty"`
	Tier       string `json:"tier,omitempty"`
}

type BookingOutcome struct {
	EventCode string          `json:"eventCode"`
	EventKind string          `json:"eventKind"`
	EventName string          `json:"eventName"`
	Tickets   []TicketSummary `json:"tickets"`
}

type FilterTicketInput struct {
	Pagination
	EventCode string `query:"eventCode" json:"eventCode"`
	Status    string `query:"status" json:"status" validate:"omitempty,oneof=ISSUED USED CANCELLED"`
}

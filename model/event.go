package model

import "time"

// Event kinds. Mỗi kind có một inventory riêng:
// SCREENING / STAGE_SHOW dùng seat map, CONCERT / EVENT dùng tier table.
const (
	KindScreening    = "SCREENING"
	KindStageShow    = "STAGE_SHOW"
	KindConcert      = "CONCERT"
	KindGenericEvent = "EVENT"
)

type Event struct {
	DTO
	PublicCode    string    `gorm:"size:20;uniqueIndex" json:"publicCode"` // S-DDMMYY-XXXXXXX
	Kind          string    `gorm:"size:20;not null;index" validate:"required" json:"kind"`
	Name          string    `gorm:"not null" validate:"required" json:"name"`
	Slug          string    `gorm:"size:120;uniqueIndex" json:"slug"`
	ScheduledDate time.Time `gorm:"not null" validate:"required" json:"scheduledDate"`
	StartTime     time.Time `gorm:"not null" validate:"required" json:"startTime"`
	VenueAddress  string    `json:"venueAddress"`
	PosterImage   string    `json:"posterImage"`

	// Metadata theo kind (screening/stage: genre/director/cast, concert: host/performers,
	// generic: organizer/category)
	Genre      string `json:"genre,omitempty"`
	Director   string `json:"director,omitempty"`
	Cast       string `json:"cast,omitempty"`
	Host       string `json:"host,omitempty"`
	Performers string `json:"performers,omitempty"`
	Organizer  string `json:"organizer,omitempty"`
	Category   string `json:"category,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Seats []Seat `gorm:"foreignKey:EventId" json:"-"`
	Tiers []Tier `gorm:"foreignKey:EventId" json:"-"`
}

type Seat struct {
	DTO
	EventId    uint    `gorm:"not null;uniqueIndex:idx_event_seat" json:"eventId"`
	SeatNumber string  `gorm:"size:20;not null;uniqueIndex:idx_event_seat" json:"seatNumber"`
	Sold       bool    `gorm:"not null;default:false" json:"sold"`
	TicketCode *string `gorm:"size:20" json:"ticketCode,omitempty"` // set đúng khi sold = true
	Event      Event   `gorm:"foreignKey:EventId" json:"-"`
}

type Tier struct {
	DTO
	EventId           uint    `gorm:"not null;uniqueIndex:idx_event_tier" json:"eventId"`
	Name              string  `gorm:"size:50;not null;uniqueIndex:idx_event_tier" json:"name"`
	Capacity          int     `gorm:"not null" json:"capacity"`
	CapacityRemaining int     `gorm:"not null;check:capacity_remaining >= 0" json:"capacityRemaining"`
	UnitPrice         float64 `gorm:"not null" json:"unitPrice"`
	Event             Event   `gorm:"foreignKey:EventId" json:"-"`
}

type SeatInput struct {
	SeatNumber string `json:"seatNumber" validate:"required"`
}

type TierInput struct {
	Name      string  `json:"name" validate:"required"`
	Capacity  int     `json:"capacity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
}

type CreateEventInput struct {
	Kind          string      `json:"kind" validate:"required"`
	Name          string      `json:"name" validate:"required"`
	ScheduledDate time.Time   `json:"scheduledDate" validate:"required"`
	StartTime     time.Time   `json:"startTime" validate:"required"`
	VenueAddress  string      `json:"venueAddress"`
	PosterImage   string      `json:"posterImage"`
	Genre         string      `json:"genre"`
	Director      string      `json:"director"`
	Cast          string      `json:"cast"`
	Host          string      `json:"host"`
	Performers    string      `json:"performers"`
	Organizer     string      `json:"organizer"`
	Category      string      `json:"category"`
	Seats         []SeatInput `json:"seats" validate:"omitempty,dive"`
	Tiers         []TierInput `json:"tiers" validate:"omitempty,dive"`
}

type FilterEventInput struct {
	Pagination
	Kind     string `query:"kind" json:"kind" validate:"omitempty"`
	IsActive *bool  `query:"isActive" json:"isActive"`
}

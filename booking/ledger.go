package booking

import (
	"time"

	"ticket_hub/constants"
	"ticket_hub/helper"
	"ticket_hub/model"

	"gorm.io/gorm"
)

// Phí xử lý 8%, có thể đổi sau
const ProcessingFeeRate = 0.08

const DefaultSeatTier = "GA"

// TicketDraft là bản nháp vé trước khi phát hành. Mỗi draft trỏ đến đúng MỘT
// event qua một trong bốn reference (giữ nguyên shape của wire format cũ).
type TicketDraft struct {
	ScreeningId    *uint
	StageShowId    *uint
	ConcertId      *uint
	GenericEventId *uint

	EventName string
	EventDate time.Time

	UnitPrice    float64
	SeatNumber   *string
	SeatTier     string
	PaymentToken string

	CustomerId *uint
	GuestName  string
	GuestEmail string
}

// eventRef resolve reference duy nhất của draft thành (eventId, kind).
func (d TicketDraft) eventRef() (uint, string, error) {
	var id uint
	var kind string
	count := 0
	for _, ref := range []struct {
		id   *uint
		kind string
	}{
		{d.ScreeningId, model.KindScreening},
		{d.StageShowId, model.KindStageShow},
		{d.ConcertId, model.KindConcert},
		{d.GenericEventId, model.KindGenericEvent},
	} {
		if ref.id != nil {
			id = *ref.id
			kind = ref.kind
			count++
		}
	}
	if count == 0 {
		return 0, "", ErrNoEventReference
	}
	if count > 1 {
		return 0, "", ErrMultipleEventReferences
	}
	return id, kind, nil
}

// IssueTicket validate draft, tính processing fee, sinh mã vé và persist.
// Vé là immutable sau khi tạo; inventory phải được reserve TRƯỚC khi gọi hàm này.
func IssueTicket(tx *gorm.DB, draft TicketDraft) (*model.Ticket, error) {
	eventId, eventKind, err := draft.eventRef()
	if err != nil {
		return nil, err
	}
	if draft.CustomerId == nil && draft.GuestEmail == "" {
		return nil, ErrNoBuyerIdentity
	}

	seatTier := draft.SeatTier
	if seatTier == "" {
		seatTier = DefaultSeatTier
	}

	ticket := model.Ticket{
		TicketCode:    helper.GenerateTicketCode(draft.EventDate, draft.EventName),
		EventId:       eventId,
		EventKind:     eventKind,
		UnitPrice:     draft.UnitPrice,
		ProcessingFee: draft.UnitPrice * ProcessingFeeRate,
		SeatNumber:    draft.SeatNumber,
		SeatTier:      seatTier,
		PaymentToken:  draft.PaymentToken,
		Status:        constants.TicketIssued,
		IssuedAt:      time.Now(),
		CustomerId:    draft.CustomerId,
		GuestName:     draft.GuestName,
		GuestEmail:    draft.GuestEmail,
	}

	if err := tx.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

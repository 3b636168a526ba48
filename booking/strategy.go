package booking

import (
	"errors"
	"fmt"
	"strings"

	"ticket_hub/model"

	"gorm.io/gorm"
)

// Tier label cho vé có ghế cố định
const AssignedSeatTier = "Assigned"

// Strategy map một event kind sang đúng tổ hợp inventory + ledger operations.
type Strategy interface {
	Book(tx *gorm.DB, input model.CreateBookingInput) (*model.BookingOutcome, error)
}

// NormalizeEventKind gom các cách viết cũ về một tag duy nhất.
// Kind lạ fail closed với ErrUnsupportedEventKind.
func NormalizeEventKind(kind string) (string, error) {
	switch strings.TrimSpace(kind) {
	case model.KindScreening, "MovieSchema", "Movie":
		return model.KindScreening, nil
	case model.KindStageShow, "TheatreSchema", "Theatre":
		return model.KindStageShow, nil
	case model.KindConcert, "ConcertSchema", "Concert":
		return model.KindConcert, nil
	case model.KindGenericEvent, "OtherEventSchema", "OtherEvent":
		return model.KindGenericEvent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEventKind, kind)
}

// StrategyFor chọn strategy theo kind (đã normalize hoặc chưa đều được).
func StrategyFor(kind string) (Strategy, error) {
	canonical, err := NormalizeEventKind(kind)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case model.KindScreening, model.KindStageShow:
		return seatBookingStrategy{kind: canonical}, nil
	default:
		return tierBookingStrategy{kind: canonical}, nil
	}
}

// validateBuyer là pre-validation chung cho mọi strategy, chạy trước khi
// đụng vào inventory.
func validateBuyer(input model.CreateBookingInput) error {
	if input.PaymentToken == "" {
		return ErrMissingPaymentToken
	}
	if input.CustomerId == nil {
		if input.GuestName == "" || input.GuestEmail == "" {
			return ErrMissingGuestContact
		}
	}
	return nil
}

func loadEvent(tx *gorm.DB, publicCode, kind string) (*model.Event, error) {
	var event model.Event
	err := tx.Where("public_code = ? AND kind = ? AND is_active = true", publicCode, kind).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, publicCode)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// draftFor gắn reference đúng kind cho ticket draft.
func draftFor(kind string, event *model.Event, input model.CreateBookingInput) TicketDraft {
	draft := TicketDraft{
		EventName:    event.Name,
		EventDate:    event.ScheduledDate,
		UnitPrice:    input.UnitPrice,
		PaymentToken: input.PaymentToken,
		CustomerId:   input.CustomerId,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
	}
	switch kind {
	case model.KindScreening:
		draft.ScreeningId = &event.ID
	case model.KindStageShow:
		draft.StageShowId = &event.ID
	case model.KindConcert:
		draft.ConcertId = &event.ID
	case model.KindGenericEvent:
		draft.GenericEventId = &event.ID
	}
	return draft
}

// seatBookingStrategy: SCREENING và STAGE_SHOW — inventory là seat map.
type seatBookingStrategy struct {
	kind string
}

func (s seatBookingStrategy) Book(tx *gorm.DB, input model.CreateBookingInput) (*model.BookingOutcome, error) {
	if err := validateBuyer(input); err != nil {
		return nil, err
	}

	seatNumbers := dedupeSeats(input.SeatNumbers)
	if len(seatNumbers) == 0 {
		return nil, ErrNoSeatsRequested
	}

	event, err := loadEvent(tx, input.EventCode, s.kind)
	if err != nil {
		return nil, err
	}

	reserved, err := ReserveSeats(tx, event.ID, seatNumbers)
	if err != nil {
		return nil, err
	}

	// Mỗi ghế một vé, sau đó ghi mã vé ngược lại seat record
	outcome := &model.BookingOutcome{
		EventCode: event.PublicCode,
		EventKind: s.kind,
		EventName: event.Name,
	}
	for _, seatNumber := range reserved {
		draft := draftFor(s.kind, event, input)
		draft.SeatNumber = &seatNumber
		draft.SeatTier = AssignedSeatTier

		ticket, err := IssueTicket(tx, draft)
		if err != nil {
			return nil, err
		}
		if err := AttachTicketCode(tx, event.ID, seatNumber, ticket.TicketCode); err != nil {
			return nil, err
		}
		outcome.Tickets = append(outcome.Tickets, model.TicketSummary{
			TicketCode: ticket.TicketCode,
			SeatNumber: seatNumber,
		})
	}
	return outcome, nil
}

// tierBookingStrategy: CONCERT và EVENT — inventory là capacity counter theo tier.
type tierBookingStrategy struct {
	kind string
}

func (s tierBookingStrategy) Book(tx *gorm.DB, input model.CreateBookingInput) (*model.BookingOutcome, error) {
	if err := validateBuyer(input); err != nil {
		return nil, err
	}
	if input.Tier == "" {
		return nil, ErrNoTierSpecified
	}

	event, err := loadEvent(tx, input.EventCode, s.kind)
	if err != nil {
		return nil, err
	}

	tier, err := ReserveTierUnits(tx, event.ID, input.Tier, 1)
	if err != nil {
		return nil, err
	}

	draft := draftFor(s.kind, event, input)
	draft.SeatTier = tier.Name

	ticket, err := IssueTicket(tx, draft)
	if err != nil {
		return nil, err
	}

	return &model.BookingOutcome{
		EventCode: event.PublicCode,
		EventKind: s.kind,
		EventName: event.Name,
		Tickets: []model.TicketSummary{
			{TicketCode: ticket.TicketCode, Tier: tier.Name},
		},
	}, nil
}

func dedupeSeats(seatNumbers []string) []string {
	seen := make(map[string]bool, len(seatNumbers))
	out := make([]string, 0, len(seatNumbers))
	for _, s := range seatNumbers {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

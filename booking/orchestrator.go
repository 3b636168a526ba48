package booking

import (
	"fmt"
	"log"

	"ticket_hub/model"

	"gorm.io/gorm"
)

// Trạng thái của một booking attempt. Committed và Failed là terminal;
// một booking không bao giờ rời Committed (không có cancellation path ở core).
const (
	StateReceived          = "RECEIVED"
	StateValidating        = "VALIDATING"
	StateInventoryReserved = "INVENTORY_RESERVED"
	StateTicketIssued      = "TICKET_ISSUED"
	StateCommitted         = "COMMITTED"
	StateFailed            = "FAILED"
)

// SubmitBooking là entry point duy nhất của subsystem đặt vé: validate envelope,
// resolve strategy theo event kind, chạy strategy trong MỘT transaction.
// Fail ở bất kỳ bước nào → rollback toàn bộ, không còn inventory mutation
// hay ticket nào sót lại.
func SubmitBooking(db *gorm.DB, input model.CreateBookingInput) (*model.BookingOutcome, error) {
	state := StateReceived

	// Envelope: eventKind, eventId, unitPrice bắt buộc
	state = StateValidating
	if input.EventKind == "" || input.EventCode == "" || input.UnitPrice <= 0 {
		return nil, failed(state, ErrMissingBookingDetails)
	}

	strategy, err := StrategyFor(input.EventKind)
	if err != nil {
		return nil, failed(state, err)
	}

	var outcome *model.BookingOutcome
	err = db.Transaction(func(tx *gorm.DB) error {
		result, err := strategy.Book(tx, input)
		if err != nil {
			return err
		}
		state = StateTicketIssued
		outcome = result
		return nil
	})
	if err != nil {
		if IsBookingError(err) {
			return nil, failed(state, err)
		}
		// Lỗi storage / tx conflict: surface chung là CommitFailed, retry được
		return nil, failed(state, fmt.Errorf("%w: %v", ErrCommitFailed, err))
	}

	state = StateCommitted
	log.Printf("booking %s: %d ticket(s) for event %s", state, len(outcome.Tickets), outcome.EventCode)
	return outcome, nil
}

func failed(fromState string, err error) error {
	log.Printf("booking %s -> %s: %v", fromState, StateFailed, err)
	return err
}

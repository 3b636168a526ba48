package booking

import "errors"

// Lỗi của subsystem đặt vé. Handler map sang HTTP status, core chỉ trả sentinel.
var (
	// Request-shape
	ErrMissingBookingDetails   = errors.New("missing required booking details")
	ErrMissingPaymentToken     = errors.New("payment token is required")
	ErrMissingGuestContact     = errors.New("guest checkout requires guest name and email")
	ErrNoSeatsRequested        = errors.New("no seat numbers provided")
	ErrNoTierSpecified         = errors.New("ticket tier must be provided")
	ErrUnsupportedEventKind    = errors.New("unsupported event kind")
	ErrMultipleEventReferences = errors.New("a ticket can only be assigned to one event")
	ErrNoEventReference        = errors.New("a ticket must be linked to an event")
	ErrNoBuyerIdentity         = errors.New("a ticket must be linked to a customer or guest")

	// Inventory
	ErrEventNotFound        = errors.New("event not found")
	ErrSeatNotFound         = errors.New("seat not found")
	ErrSeatAlreadySold      = errors.New("seat is already sold")
	ErrTierNotFound         = errors.New("ticket tier not found")
	ErrInsufficientCapacity = errors.New("no tickets available for this tier")
	ErrEventSoldOut         = errors.New("event is sold out")

	// Infrastructure. An toàn để retry: booking fail không để lại state.
	ErrCommitFailed = errors.New("booking could not be committed")
)

var bookingErrors = []error{
	ErrMissingBookingDetails,
	ErrMissingPaymentToken,
	ErrMissingGuestContact,
	ErrNoSeatsRequested,
	ErrNoTierSpecified,
	ErrUnsupportedEventKind,
	ErrMultipleEventReferences,
	ErrNoEventReference,
	ErrNoBuyerIdentity,
	ErrEventNotFound,
	ErrSeatNotFound,
	ErrSeatAlreadySold,
	ErrTierNotFound,
	ErrInsufficientCapacity,
	ErrEventSoldOut,
}

// IsBookingError phân biệt lỗi domain với lỗi hạ tầng (storage, tx conflict).
func IsBookingError(err error) bool {
	for _, e := range bookingErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

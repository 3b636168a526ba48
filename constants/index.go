package constants

const (
	ERROR_INPUT              = "ERROR_INPUT"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"
	EVENT_NOT_FOUND          = "EVENT_NOT_FOUND"
	TICKET_NOT_FOUND         = "TICKET_NOT_FOUND"
	CUSTOMER_NOT_FOUND       = "CUSTOMER_NOT_FOUND"
	NOT_ADMIN                = "NOT_ADMIN"
	EMAIL_ALREADY_USED       = "EMAIL_ALREADY_USED"
	WRONG_CREDENTIALS        = "WRONG_CREDENTIALS"
)

// Trạng thái vé
const (
	TicketIssued    = "ISSUED"
	TicketUsed      = "USED"
	TicketCancelled = "CANCELLED"
)

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_CUSTOMER = "CUSTOMER"
)

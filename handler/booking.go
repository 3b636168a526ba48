package handler

import (
	"errors"
	"strings"

	"ticket_hub/booking"
	"ticket_hub/database"
	"ticket_hub/model"
	"ticket_hub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking nhận booking request (đã validate), gọi orchestrator,
// broadcast inventory mới và gửi email xác nhận async.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	outcome, err := booking.SubmitBooking(database.DB, input)
	if err != nil {
		return bookingErrorResponse(c, err)
	}

	// Broadcast realtime cho client đang xem event này
	BroadcastEventInventory(outcome.EventCode)

	// Gửi email (async)
	email := input.GuestEmail
	if input.CustomerId != nil {
		var customer model.Customer
		if err := database.DB.First(&customer, *input.CustomerId).Error; err == nil {
			email = customer.Email
		}
	}
	if email != "" {
		seats := []string{}
		codes := []string{}
		tier := ""
		for _, t := range outcome.Tickets {
			codes = append(codes, t.TicketCode)
			if t.SeatNumber != "" {
				seats = append(seats, t.SeatNumber)
			}
			if t.Tier != "" {
				tier = t.Tier
			}
		}
		total := input.UnitPrice * float64(len(outcome.Tickets))
		utils.SendBookingConfirmationEmail(email, utils.BookingConfirmationData{
			EventName:   outcome.EventName,
			EventKind:   outcome.EventKind,
			Seats:       strings.Join(seats, ", "),
			Tier:        tier,
			TicketCount: len(outcome.Tickets),
			TotalAmount: total,
			Fees:        total * booking.ProcessingFeeRate,
		}, codes)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, outcome)
}

// bookingErrorResponse map sentinel error của core sang HTTP status
func bookingErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrEventNotFound),
		errors.Is(err, booking.ErrSeatNotFound),
		errors.Is(err, booking.ErrTierNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found", err)

	case errors.Is(err, booking.ErrSeatAlreadySold),
		errors.Is(err, booking.ErrInsufficientCapacity),
		errors.Is(err, booking.ErrEventSoldOut):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Inventory unavailable", err)

	case errors.Is(err, booking.ErrCommitFailed):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Booking failed, please retry", err)

	default:
		// Request-shape errors
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid booking request", err)
	}
}

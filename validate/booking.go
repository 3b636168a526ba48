package validate

import (
	"ticket_hub/constants"
	"ticket_hub/helper"
	"ticket_hub/model"
	"ticket_hub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking parse + validate booking request. Customer đăng nhập (nếu có)
// được gắn vào input, guest thì để trống — core sẽ check guest contact.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		claim, customer := helper.GetInfoCustomerFromToken(c)
		if claim.CustomerId > 0 && customer.ID > 0 {
			input.CustomerId = &customer.ID
		}

		c.Locals("input", input)
		return c.Next()
	}
}

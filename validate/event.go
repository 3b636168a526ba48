package validate

import (
	"errors"

	"ticket_hub/booking"
	"ticket_hub/constants"
	"ticket_hub/model"
	"ticket_hub/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		kind, err := booking.NormalizeEventKind(input.Kind)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported event kind", err)
		}
		input.Kind = kind

		// Inventory phải khớp kind: seat map cho screening/stage, tier cho concert/event
		switch kind {
		case model.KindScreening, model.KindStageShow:
			if len(input.Seats) == 0 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
					errors.New("seat-based events require a seat map"))
			}
		default:
			if len(input.Tiers) == 0 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
					errors.New("tier-based events require ticket pricing tiers"))
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

package router

import (
	"ticket_hub/handler"
	"ticket_hub/middleware"
	"ticket_hub/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	auth.Post("/login", validate.Login(), handler.Login)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/me", middleware.Protected(), handler.Me)

	event := v1.Group("/event", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:code", handler.GetEventInventory)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Patch("/:code/deactivate", middleware.Protected(), handler.DeactivateEvent)
	event.Get("/:code/live", websocket.New(handler.EventInventorySocket))

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.OptionalJWT(), validate.CreateBooking(), handler.CreateBooking)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/mine", middleware.Protected(), handler.GetMyTickets)
	ticket.Get("/:ticketCode", handler.GetTicketByCode)
	ticket.Get("/:ticketCode/qrcode", handler.GetTicketQRCode)
}

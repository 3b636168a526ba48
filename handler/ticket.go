package handler

import (
	"errors"
	"fmt"

	"ticket_hub/constants"
	"ticket_hub/database"
	"ticket_hub/helper"
	"ticket_hub/model"
	"ticket_hub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetTicketByCode(c *fiber.Ctx) error {
	ticketCode := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.Preload("Event").
		Where("ticket_code = ?", ticketCode).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.TICKET_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetMyTickets trả vé của customer đang đăng nhập
func GetMyTickets(c *fiber.Ctx) error {
	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 || customer.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CUSTOMER_NOT_FOUND, nil)
	}

	filterInput := new(model.FilterTicketInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Ticket{}).
		Preload("Event").
		Where("customer_id = ?", customer.ID)

	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.EventCode != "" {
		condition = condition.Joins("JOIN events ON events.id = tickets.event_id").
			Where("events.public_code = ?", filterInput.EventCode)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var tickets []model.Ticket
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("tickets.created_at desc").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.TICKET_NOT_FOUND, err)
	}

	response := &model.ResponseCustom{
		Rows:       tickets,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetTicketQRCode trả QR PNG cho một vé (dùng cho check-in)
func GetTicketQRCode(c *fiber.Ctx) error {
	ticketCode := c.Params("ticketCode")

	var ticket model.Ticket
	if err := database.DB.Where("ticket_code = ?", ticketCode).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	qrContent := fmt.Sprintf("https://tickethub.local/checkin/%s", ticket.TicketCode)
	qrBytes, err := utils.GenerateQRCode(qrContent, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}

package handler

import (
	"errors"

	"ticket_hub/constants"
	"ticket_hub/database"
	"ticket_hub/helper"
	"ticket_hub/model"
	"ticket_hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type SeatUI struct {
	SeatNumber string  `json:"seatNumber"`
	Sold       bool    `json:"sold"`
	TicketCode *string `json:"ticketCode,omitempty"`
}

type TierUI struct {
	Name              string  `json:"name"`
	CapacityRemaining int     `json:"capacityRemaining"`
	UnitPrice         float64 `json:"unitPrice"`
}

type EventInventoryUI struct {
	PublicCode string   `json:"publicCode"`
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	Seats      []SeatUI `json:"seats,omitempty"`
	Tiers      []TierUI `json:"tiers,omitempty"`
}

// CreateEvent tạo event mới kèm seat map hoặc tier table
func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	db := database.DB
	var newEvent model.Event
	copier.Copy(&newEvent, &input)
	newEvent.PublicCode = helper.GenerateEventCode(input.Kind, input.ScheduledDate)
	newEvent.Slug = helper.GenerateUniqueEventSlug(db, input.Name)
	newEvent.IsActive = true

	for _, seat := range input.Seats {
		newEvent.Seats = append(newEvent.Seats, model.Seat{SeatNumber: seat.SeatNumber})
	}
	for _, tier := range input.Tiers {
		newEvent.Tiers = append(newEvent.Tiers, model.Tier{
			Name:              tier.Name,
			Capacity:          tier.Capacity,
			CapacityRemaining: tier.Capacity,
			UnitPrice:         tier.UnitPrice,
		})
	}

	if err := db.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterEventInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Event{})
	if filterInput.Kind != "" {
		condition = condition.Where("kind = ?", filterInput.Kind)
	}
	if filterInput.IsActive != nil {
		condition = condition.Where("is_active = ?", *filterInput.IsActive)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var events []model.Event
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("scheduled_date asc").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EVENT_NOT_FOUND, err)
	}

	response := &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetEventInventory trả snapshot inventory hiện tại của một event theo public code
func GetEventInventory(c *fiber.Ctx) error {
	code := c.Params("code")

	snapshot, err := FetchEventInventory(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, snapshot)
}

// FetchEventInventory load snapshot dùng chung cho REST và websocket broadcast
func FetchEventInventory(code string) (*EventInventoryUI, error) {
	var event model.Event
	if err := database.DB.
		Preload("Seats", func(db *gorm.DB) *gorm.DB { return db.Order("seats.seat_number asc") }).
		Preload("Tiers").
		Where("public_code = ?", code).
		First(&event).Error; err != nil {
		return nil, err
	}

	snapshot := &EventInventoryUI{
		PublicCode: event.PublicCode,
		Kind:       event.Kind,
		Name:       event.Name,
	}
	for _, s := range event.Seats {
		snapshot.Seats = append(snapshot.Seats, SeatUI{
			SeatNumber: s.SeatNumber,
			Sold:       s.Sold,
			TicketCode: s.TicketCode,
		})
	}
	for _, t := range event.Tiers {
		snapshot.Tiers = append(snapshot.Tiers, TierUI{
			Name:              t.Name,
			CapacityRemaining: t.CapacityRemaining,
			UnitPrice:         t.UnitPrice,
		})
	}
	return snapshot, nil
}

// DeactivateEvent soft-deactivate, không xoá record
func DeactivateEvent(c *fiber.Ctx) error {
	code := c.Params("code")

	result := database.DB.Model(&model.Event{}).
		Where("public_code = ?", code).
		Update("is_active", false)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not deactivate event", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"publicCode": code, "isActive": false})
}

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
)

func RegisterCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterCustomerInput)

	existing, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_USED, errors.New("email already registered"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not hash password", err)
	}

	var newCustomer model.Customer
	copier.Copy(&newCustomer, &input)
	newCustomer.Password = hash
	newCustomer.IsActive = true

	if err := database.DB.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create customer", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	if customer == nil || !customer.IsActive || !helper.CheckPasswordHash(input.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WRONG_CREDENTIALS, errors.New("invalid email or password"))
	}

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{
		CustomerId: customer.ID,
		Email:      customer.Email,
		Role:       constants.ROLE_CUSTOMER,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate token", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken: accessToken,
	})
}

func Me(c *fiber.Ctx) error {
	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 || customer.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.CUSTOMER_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

package helper

import (
	"errors"
	"net/mail"
	"os"
	"time"

	"ticket_hub/database"
	"ticket_hub/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customerId": claim.CustomerId,
		"email":      claim.Email,
		"role":       claim.Role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(JwtSecret)
}

// GetInfoCustomerFromToken đọc claim từ token trong Locals (set bởi middleware),
// trả kèm customer record nếu còn active.
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, model.Customer) {
	var claim model.TokenClaim
	var customer model.Customer

	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return claim, customer
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claim, customer
	}

	if id, ok := claims["customerId"].(float64); ok {
		claim.CustomerId = uint(id)
	}
	if email, ok := claims["email"].(string); ok {
		claim.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		claim.Role = role
	}

	if claim.CustomerId > 0 {
		database.DB.Where("id = ? AND is_active = true", claim.CustomerId).First(&customer)
	}
	return claim, customer
}

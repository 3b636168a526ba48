package database

import (
	"fmt"
	"log"
	"time"

	"ticket_hub/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456th"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456th"
	}

	customers := []model.Customer{
		{Name: "Demo Customer", Email: "demo@tickethub.local", Password: hashPassword, IsActive: true},
	}
	for _, customer := range customers {
		if err := db.Where(model.Customer{Email: customer.Email}).FirstOrCreate(&customer).Error; err != nil {
			log.Println("failed to seed customer:", customer.Email, "error:", err)
		}
	}

	var count int64
	db.Model(&model.Event{}).Count(&count)
	if count > 0 {
		return
	}

	// Seat-based demo: một screening với seat map M1-S1..M1-S20
	screening := model.Event{
		Kind:          model.KindScreening,
		Name:          "Midnight Premiere",
		ScheduledDate: parseDate("2026-10-10"),
		StartTime:     parseDate("2026-10-10").Add(20 * time.Hour),
		Genre:         "Thriller",
		Director:      "L. Tran",
		Cast:          "A. Pham, B. Le",
		VenueAddress:  "Hall 1, Star Cinema",
	}
	screening.PublicCode = "S-101026-DEMO001"
	screening.Slug = "midnight-premiere"
	for i := 1; i <= 20; i++ {
		screening.Seats = append(screening.Seats, model.Seat{
			SeatNumber: fmt.Sprintf("M1-S%d", i),
		})
	}
	if err := db.Create(&screening).Error; err != nil {
		log.Println("failed to seed screening:", err)
	}

	// Tier-based demo: một concert với VIP + Standard
	concert := model.Event{
		Kind:          model.KindConcert,
		Name:          "Summer Sound Festival",
		ScheduledDate: parseDate("2026-11-21"),
		StartTime:     parseDate("2026-11-21").Add(19 * time.Hour),
		Host:          "Live Nation VN",
		Performers:    "The Wanderers, DJ Kat",
		VenueAddress:  "Riverside Park",
	}
	concert.PublicCode = "C-211126-DEMO001"
	concert.Slug = "summer-sound-festival"
	concert.Tiers = []model.Tier{
		{Name: "VIP", Capacity: 50, CapacityRemaining: 50, UnitPrice: 120},
		{Name: "Standard", Capacity: 500, CapacityRemaining: 500, UnitPrice: 45},
	}
	if err := db.Create(&concert).Error; err != nil {
		log.Println("failed to seed concert:", err)
	}

	// Payment token demo cho guest checkout thử nhanh
	log.Println("Seeded demo events; sample payment token:", "pay_"+uuid.New().String()[:8])
}

package helper

import (
	"log"
	"time"

	"ticket_hub/database"
	"ticket_hub/model"

	"github.com/robfig/cron/v3"
)

var eventScheduler *cron.Cron

// StartEventStatusScheduler deactivate các event đã qua start time. Chạy mỗi 5 phút.
func StartEventStatusScheduler() {
	eventScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := eventScheduler.AddFunc("*/5 * * * *", deactivatePastEvents)
	if err != nil {
		log.Printf("Error starting event status scheduler: %v", err)
		return
	}

	eventScheduler.Start()
	log.Println("Event status scheduler started (every 5 minutes)")
}

func deactivatePastEvents() {
	now := time.Now()
	result := database.DB.Model(&model.Event{}).
		Where("is_active = true AND start_time < ?", now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("Error deactivating past events: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d past event(s)", result.RowsAffected)
	}
}

// StopEventStatusScheduler dừng scheduler khi tắt server
func StopEventStatusScheduler() {
	if eventScheduler != nil {
		eventScheduler.Stop()
		log.Println("Event status scheduler stopped")
	}
}

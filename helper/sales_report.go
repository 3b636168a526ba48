package helper

import (
	"log"
	"time"

	"ticket_hub/database"
	"ticket_hub/model"

	"github.com/go-co-op/gocron/v2"
)

var salesScheduler gocron.Scheduler

// StartSalesReportScheduler log tổng kết vé bán theo kind, chạy 00:05 mỗi ngày
func StartSalesReportScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Printf("Error creating sales report scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(logDailySales),
	)
	if err != nil {
		log.Printf("Error scheduling sales report job: %v", err)
		return
	}

	salesScheduler = s
	s.Start()
	log.Println("Sales report scheduler started (daily at 00:05)")
}

func logDailySales() {
	since := time.Now().AddDate(0, 0, -1)

	type kindCount struct {
		EventKind string
		Total     int64
		Revenue   float64
	}
	var rows []kindCount
	err := database.DB.Model(&model.Ticket{}).
		Select("event_kind, COUNT(*) as total, SUM(unit_price + processing_fee) as revenue").
		Where("issued_at >= ?", since).
		Group("event_kind").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error building daily sales report: %v", err)
		return
	}

	for _, row := range rows {
		log.Printf("Sales last 24h - %s: %d ticket(s), revenue %.2f", row.EventKind, row.Total, row.Revenue)
	}
}

func StopSalesReportScheduler() {
	if salesScheduler != nil {
		_ = salesScheduler.Shutdown()
		log.Println("Sales report scheduler stopped")
	}
}

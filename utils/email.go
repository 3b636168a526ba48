package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt vé
type BookingConfirmationData struct {
	EventName   string
	EventKind   string
	EventDate   string
	Seats       string
	Tier        string
	TicketCount int
	TotalAmount float64
	Fees        float64
}

// SendBookingConfirmationEmail gửi email xác nhận kèm QR code cho từng vé (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, ticketCodes []string) {
	go func() {
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Error loading email template: %v", err)
			return
		}

		var htmlBody bytes.Buffer
		if err := tmpl.Execute(&htmlBody, data); err != nil {
			log.Printf("Error rendering email template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your tickets for "+data.EventName)
		m.SetBody("text/html", htmlBody.String())

		// Đính kèm QR code cho từng vé
		for _, code := range ticketCodes {
			qrBytes, err := GenerateQRCode(code, 256)
			if err != nil {
				log.Printf("Error generating QR for ticket %s: %v", code, err)
				continue
			}
			filename := fmt.Sprintf("Ticket_%s.png", code)
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qrBytes))
				return err
			}))
		}

		d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending confirmation email: %v", err)
		} else {
			log.Printf("Confirmation email sent to %s", to)
		}
	}()
}

package helper

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"ticket_hub/model"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func Base36Code(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = base36Chars[rand.IntN(len(base36Chars))]
	}
	return string(b)
}

// EventKindShortCode trả về prefix 1 ký tự cho public code theo kind
func EventKindShortCode(kind string) string {
	switch kind {
	case model.KindScreening:
		return "S"
	case model.KindStageShow:
		return "T"
	case model.KindConcert:
		return "C"
	case model.KindGenericEvent:
		return "E"
	}
	return "X"
}

// GenerateEventCode tạo public code dạng <shortcode>-<DDMMYY>-<7 ký tự base36>
func GenerateEventCode(kind string, scheduledDate time.Time) string {
	return fmt.Sprintf("%s-%s-%s",
		EventKindShortCode(kind),
		scheduledDate.Format("020106"),
		Base36Code(7),
	)
}

// GenerateTicketCode tạo mã vé dạng <DDMMYY>-<3 chữ đầu tên event>-<6 ký tự base36>
func GenerateTicketCode(eventDate time.Time, eventName string) string {
	short := []rune(strings.ToUpper(eventName))
	if len(short) > 3 {
		short = short[:3]
	}
	return fmt.Sprintf("%s-%s-%s",
		eventDate.Format("020106"),
		string(short),
		Base36Code(6),
	)
}

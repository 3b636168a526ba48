package booking

import (
	"errors"
	"fmt"

	"ticket_hub/model"

	"gorm.io/gorm"
)

// ReserveSeats đánh dấu sold cho toàn bộ seatNumbers — all-or-nothing.
// Mỗi ghế được flip bằng một conditional UPDATE (sold = false là điều kiện),
// RowsAffected quyết định thành công; không bao giờ read-then-write.
// Caller phải chạy trong transaction: lỗi ở bất kỳ ghế nào rollback tất cả.
func ReserveSeats(tx *gorm.DB, eventId uint, seatNumbers []string) ([]string, error) {
	// Sold out check trước khi validate từng ghế
	var total, available int64
	if err := tx.Model(&model.Seat{}).Where("event_id = ?", eventId).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&model.Seat{}).
		Where("event_id = ? AND sold = false", eventId).
		Count(&available).Error; err != nil {
		return nil, err
	}
	if total > 0 && available == 0 {
		return nil, ErrEventSoldOut
	}

	reserved := make([]string, 0, len(seatNumbers))
	for _, seatNumber := range seatNumbers {
		result := tx.Model(&model.Seat{}).
			Where("event_id = ? AND seat_number = ? AND sold = false", eventId, seatNumber).
			Update("sold", true)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			// Phân biệt ghế không tồn tại vs đã bán
			var count int64
			if err := tx.Model(&model.Seat{}).
				Where("event_id = ? AND seat_number = ?", eventId, seatNumber).
				Count(&count).Error; err != nil {
				return nil, err
			}
			if count == 0 {
				return nil, fmt.Errorf("%w: %s", ErrSeatNotFound, seatNumber)
			}
			return nil, fmt.Errorf("%w: %s", ErrSeatAlreadySold, seatNumber)
		}
		reserved = append(reserved, seatNumber)
	}
	return reserved, nil
}

// AttachTicketCode ghi mã vé ngược lại seat record sau khi vé được phát hành.
// Chạy trong cùng transaction với ReserveSeats nên back-link không thể mất.
func AttachTicketCode(tx *gorm.DB, eventId uint, seatNumber, ticketCode string) error {
	result := tx.Model(&model.Seat{}).
		Where("event_id = ? AND seat_number = ? AND sold = true", eventId, seatNumber).
		Update("ticket_code", ticketCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSeatNotFound, seatNumber)
	}
	return nil
}

// ReserveTierUnits trừ capacity của một tier bằng một UPDATE có điều kiện
// (capacity_remaining >= quantity), atomic so với mọi booking khác cùng event.
func ReserveTierUnits(tx *gorm.DB, eventId uint, tierName string, quantity int) (*model.Tier, error) {
	if quantity <= 0 {
		quantity = 1
	}

	result := tx.Model(&model.Tier{}).
		Where("event_id = ? AND name = ? AND capacity_remaining >= ?", eventId, tierName, quantity).
		UpdateColumn("capacity_remaining", gorm.Expr("capacity_remaining - ?", quantity))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var tier model.Tier
		err := tx.Where("event_id = ? AND name = ?", eventId, tierName).First(&tier).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTierNotFound, tierName)
		}
		if err != nil {
			return nil, err
		}
		var withCapacity int64
		if err := tx.Model(&model.Tier{}).
			Where("event_id = ? AND capacity_remaining > 0", eventId).
			Count(&withCapacity).Error; err != nil {
			return nil, err
		}
		if withCapacity == 0 {
			return nil, ErrEventSoldOut
		}
		return nil, fmt.Errorf("%w: %s", ErrInsufficientCapacity, tierName)
	}

	var tier model.Tier
	if err := tx.Where("event_id = ? AND name = ?", eventId, tierName).First(&tier).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

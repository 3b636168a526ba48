package helper

import (
	"fmt"

	"ticket_hub/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueEventSlug tạo slug duy nhất cho event, thêm hậu tố -1, -2... khi trùng
func GenerateUniqueEventSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Event{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

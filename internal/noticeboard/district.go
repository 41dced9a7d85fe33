package noticeboard

import (
	"strings"

	"github.com/shenikar/citizen_watch/internal/models"
)

// DistrictOf извлекает район из адреса вида "улица, район, область":
// второй сегмент после разделения по запятой, без пробелов по краям.
// Когда в модели появится отдельное поле района, заменить нужно только эту функцию.
func DistrictOf(address string) (string, bool) {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return "", false
	}
	district := strings.TrimSpace(parts[1])
	if district == "" {
		return "", false
	}
	return district, true
}

// Districts возвращает уникальные районы в порядке первого появления
func Districts(items []*models.Incident) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		district, ok := DistrictOf(item.Location.Address)
		if !ok {
			continue
		}
		if _, dup := seen[district]; dup {
			continue
		}
		seen[district] = struct{}{}
		out = append(out, district)
	}
	return out
}

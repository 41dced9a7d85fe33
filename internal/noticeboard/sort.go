package noticeboard

import (
	"slices"

	"github.com/shenikar/citizen_watch/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey - ключ сортировки доски
type SortKey string

const (
	SortByTimestamp SortKey = "timestamp"
	SortBySeverity  SortKey = "severity"
	SortByStatus    SortKey = "status"
	SortByLocation  SortKey = "location"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByTimestamp, SortBySeverity, SortByStatus, SortByLocation:
		return true
	}
	return false
}

// ParseSortKey возвращает ключ по умолчанию (timestamp) для пустой строки
func ParseSortKey(v string) SortKey {
	if v == "" {
		return SortByTimestamp
	}
	return SortKey(v)
}

// Sort возвращает отсортированную копию. Сортировка стабильная: равные
// записи сохраняют порядок ленты. Неизвестный ключ оставляет порядок как есть.
func Sort(items []*models.Incident, key SortKey) []*models.Incident {
	out := slices.Clone(items)
	if out == nil {
		out = []*models.Incident{}
	}

	switch key {
	case SortByTimestamp:
		slices.SortStableFunc(out, func(a, b *models.Incident) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortBySeverity:
		slices.SortStableFunc(out, func(a, b *models.Incident) int {
			return b.Severity.Rank() - a.Severity.Rank()
		})
	case SortByStatus:
		slices.SortStableFunc(out, func(a, b *models.Incident) int {
			return b.Status.Rank() - a.Status.Rank()
		})
	case SortByLocation:
		// Collator не потокобезопасен, создаем на каждый вызов
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *models.Incident) int {
			return c.CompareString(a.Location.Address, b.Location.Address)
		})
	}
	return out
}

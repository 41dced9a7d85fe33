// Package noticeboard строит представление доски объявлений офицера:
// фильтрация, сортировка и сводные счетчики поверх ленты обращений.
// Все функции чистые и не изменяют входной список.
package noticeboard

import (
	"strings"
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
)

// Any - значение фильтра "без ограничения" в запросах
const Any = "all"

// TimeRange - окно давности обращения
type TimeRange string

const (
	TimeRangeAny       TimeRange = ""
	TimeRangeLastHour  TimeRange = "1h"
	TimeRangeLastDay   TimeRange = "24h"
	TimeRangeLastWeek  TimeRange = "7d"
	TimeRangeLastMonth TimeRange = "30d"
)

var timeRangeThresholds = map[TimeRange]time.Duration{
	TimeRangeLastHour:  time.Hour,
	TimeRangeLastDay:   24 * time.Hour,
	TimeRangeLastWeek:  168 * time.Hour,
	TimeRangeLastMonth: 720 * time.Hour,
}

// Threshold возвращает длительность окна; ok=false для неизвестного значения
func (r TimeRange) Threshold() (time.Duration, bool) {
	d, ok := timeRangeThresholds[r]
	return d, ok
}

func (r TimeRange) Valid() bool {
	if r == TimeRangeAny {
		return true
	}
	_, ok := timeRangeThresholds[r]
	return ok
}

// Filters - критерии доски. Нулевое значение поля означает "без ограничения".
type Filters struct {
	Status    models.Status
	Severity  models.Severity
	Category  models.Category
	District  string
	TimeRange TimeRange

	// AssignedToMe принимается, но ни на что не влияет: данных о закреплении
	// обращений за офицерами в модели нет.
	AssignedToMe bool
}

// ParseFilters разбирает значения из запроса, "all" и пустая строка снимают ограничение
func ParseFilters(status, severity, category, district, timeRange string, assignedToMe bool) Filters {
	return Filters{
		Status:       models.Status(unrestricted(status)),
		Severity:     models.Severity(unrestricted(severity)),
		Category:     models.Category(unrestricted(category)),
		District:     unrestricted(district),
		TimeRange:    TimeRange(unrestricted(timeRange)),
		AssignedToMe: assignedToMe,
	}
}

func unrestricted(v string) string {
	v = strings.TrimSpace(v)
	if v == Any {
		return ""
	}
	return v
}

// IsZero сообщает, что ни один фильтр не активен
func (f Filters) IsZero() bool {
	return f.Status == "" && f.Severity == "" && f.Category == "" && f.District == "" && f.TimeRange == TimeRangeAny
}

// Match проверяет запись по всем активным критериям (логическое И)
func (f Filters) Match(incident *models.Incident, now time.Time) bool {
	if f.Status != "" && incident.Status != f.Status {
		return false
	}
	if f.Severity != "" && incident.Severity != f.Severity {
		return false
	}
	if f.Category != "" && incident.Category != f.Category {
		return false
	}
	if f.District != "" {
		district, ok := DistrictOf(incident.Location.Address)
		if !ok || district != f.District {
			return false
		}
	}
	if f.TimeRange != TimeRangeAny {
		threshold, ok := f.TimeRange.Threshold()
		if !ok || !within(incident.CreatedAt, now, threshold) {
			return false
		}
	}
	return true
}

// within - (now - createdAt) <= threshold; нулевое время не проходит
func within(createdAt, now time.Time, threshold time.Duration) bool {
	if createdAt.IsZero() {
		return false
	}
	return now.Sub(createdAt) <= threshold
}

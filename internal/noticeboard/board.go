package noticeboard

import (
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
)

const recentWindow = 24 * time.Hour

// Counts - счетчики по отфильтрованному набору
type Counts struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	HighPriority int `json:"high_priority"`
	Recent       int `json:"recent"`
}

// Result - отфильтрованный и отсортированный список со счетчиками
type Result struct {
	Incidents []*models.Incident
	Counts    Counts
}

// Apply фильтрует и сортирует ленту. now передается вызывающим и
// должен соответствовать моменту запроса. Результат ничего не кэширует.
func Apply(items []*models.Incident, filters Filters, key SortKey, now time.Time) Result {
	filtered := Filter(items, filters, now)
	return Result{
		Incidents: Sort(filtered, key),
		Counts:    Count(filtered, now),
	}
}

// Filter возвращает записи, прошедшие все активные фильтры, в исходном порядке
func Filter(items []*models.Incident, filters Filters, now time.Time) []*models.Incident {
	out := make([]*models.Incident, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if filters.Match(item, now) {
			out = append(out, item)
		}
	}
	return out
}

// Count считает сводку по уже отфильтрованному набору
func Count(filtered []*models.Incident, now time.Time) Counts {
	counts := Counts{Total: len(filtered)}
	for _, item := range filtered {
		if item.Status == models.StatusPending {
			counts.Pending++
		}
		if item.Severity.IsHighPriority() {
			counts.HighPriority++
		}
		if within(item.CreatedAt, now, recentWindow) {
			counts.Recent++
		}
	}
	return counts
}

// DashboardStats - сводка панели офицера по всей ленте
type DashboardStats struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	UnderReview   int `json:"under_review"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
	Dismissed     int `json:"dismissed"`
	HighPriority  int `json:"high_priority"`
}

// Summarize считает счетчики панели по всему списку без фильтров
func Summarize(items []*models.Incident) DashboardStats {
	var stats DashboardStats
	for _, item := range items {
		if item == nil {
			continue
		}
		stats.Total++
		switch item.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusUnderReview:
			stats.UnderReview++
		case models.StatusInvestigating:
			stats.Investigating++
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusDismissed:
			stats.Dismissed++
		}
		if item.Severity.IsHighPriority() {
			stats.HighPriority++
		}
	}
	return stats
}

// Package demo содержит демонстрационные обращения для наполнения пустой базы.
package demo

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
)

// Incidents возвращает пять фиксированных обращений с известными датами
func Incidents() []*models.Incident {
	return []*models.Incident{
		{
			Title:       "Excessive Force During Traffic Stop",
			Description: "Officer used unnecessary force during routine traffic violation. Multiple witnesses present.",
			Location:    location("Kampala Road, Central Division, Kampala District", 0.3476, 32.5825),
			CreatedAt:   time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			Media: []models.Media{
				{Type: models.MediaVideo, URL: placeholder("ff6b6b", "Video+Evidence"), Thumbnail: placeholder("ff6b6b", "Video+Thumbnail")},
			},
			Status:     models.StatusUnderReview,
			ReportedBy: "Anonymous Citizen",
			Category:   models.CategoryExcessiveForce,
			Severity:   models.SeverityHigh,
			Tags:       []string{"traffic_stop", "excessive_force", "witnesses"},
		},
		{
			Title:       "Discriminatory Behavior at Checkpoint",
			Description: "Officer displayed discriminatory behavior during security checkpoint screening.",
			Location:    location("Jinja Road, Nakawa Division, Kampala District", 0.3354, 32.6131),
			CreatedAt:   time.Date(2024, 1, 14, 9, 15, 0, 0, time.UTC),
			Media: []models.Media{
				{Type: models.MediaPhoto, URL: placeholder("4ecdc4", "Photo+Evidence")},
			},
			Status:     models.StatusInvestigating,
			ReportedBy: "John D.",
			Category:   models.CategoryDiscrimination,
			Severity:   models.SeverityMedium,
			Tags:       []string{"checkpoint", "discrimination", "profiling"},
		},
		{
			Title:       "Misconduct During Arrest",
			Description: "Officer failed to follow proper arrest procedures and used inappropriate language.",
			Location:    location("Main Street, Jinja Municipality, Jinja District", 0.4244, 33.2042),
			CreatedAt:   time.Date(2024, 1, 13, 21, 45, 0, 0, time.UTC),
			Media: []models.Media{
				{Type: models.MediaVideo, URL: placeholder("45b7d1", "Video+Evidence"), Thumbnail: placeholder("45b7d1", "Video+Thumbnail")},
				{Type: models.MediaPhoto, URL: placeholder("96ceb4", "Photo+Evidence")},
			},
			Status:     models.StatusPending,
			ReportedBy: "Maria S.",
			Category:   models.CategoryMisconduct,
			Severity:   models.SeverityHigh,
			Tags:       []string{"arrest", "misconduct", "inappropriate_language"},
		},
		{
			Title:       "Corruption - Bribery Attempt",
			Description: "Officer solicited bribe during routine inspection. Audio recording available.",
			Location:    location("Masaka Road, Makindye Division, Kampala District", 0.2816, 32.5729),
			CreatedAt:   time.Date(2024, 1, 12, 16, 20, 0, 0, time.UTC),
			Media: []models.Media{
				{Type: models.MediaPhoto, URL: placeholder("f7dc6f", "Audio+Recording")},
			},
			Status:     models.StatusResolved,
			ReportedBy: "Business Owner",
			Category:   models.CategoryCorruption,
			Severity:   models.SeverityCritical,
			Tags:       []string{"bribery", "corruption", "audio_evidence"},
		},
		{
			Title:       "Unprofessional Conduct",
			Description: "Officer displayed unprofessional behavior during public event.",
			Location:    location("Bombo Road, Kawempe Division, Kampala District", 0.3751, 32.5729),
			CreatedAt:   time.Date(2024, 1, 11, 13, 10, 0, 0, time.UTC),
			Media: []models.Media{
				{Type: models.MediaVideo, URL: placeholder("bb8fce", "Video+Evidence"), Thumbnail: placeholder("bb8fce", "Video+Thumbnail")},
			},
			Status:     models.StatusDismissed,
			ReportedBy: "Event Attendee",
			Category:   models.CategoryOther,
			Severity:   models.SeverityLow,
			Tags:       []string{"public_event", "unprofessional", "conduct"},
		},
	}
}

var (
	statuses   = []models.Status{models.StatusPending, models.StatusUnderReview, models.StatusInvestigating, models.StatusResolved, models.StatusDismissed}
	categories = []models.Category{models.CategoryMisconduct, models.CategoryExcessiveForce, models.CategoryCorruption, models.CategoryDiscrimination, models.CategoryOther}
	severities = []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical}
	places     = []models.Location{
		location("Entebbe Road, Wakiso District", 0.2906, 32.4419),
		location("Gayaza Road, Wakiso District", 0.4106, 32.6131),
		location("Mukono Town, Mukono District", 0.3533, 32.7574),
		location("Mbarara Town, Mbarara District", -0.6103, 30.6588),
		location("Gulu Town, Gulu District", 2.7856, 32.2998),
		location("Fort Portal, Kabarole District", 0.6714, 30.2748),
		location("Mbale Town, Mbale District", 1.0827, 34.1755),
		location("Soroti Town, Soroti District", 1.7147, 33.6111),
		location("Lira Town, Lira District", 2.2491, 32.8998),
		location("Masindi Town, Masindi District", 1.6845, 31.7148),
	}
)

const generatedWindow = 30 * 24 * time.Hour

// Generate создает count случайных обращений с номерами от startID,
// даты равномерно распределены за последние 30 дней до now.
func Generate(rng *rand.Rand, startID, count int, now time.Time) []*models.Incident {
	out := make([]*models.Incident, 0, count)
	for i := 0; i < count; i++ {
		id := startID + i
		category := categories[rng.IntN(len(categories))]
		severity := severities[rng.IntN(len(severities))]
		mediaType := models.MediaPhoto
		if rng.IntN(2) == 1 {
			mediaType = models.MediaVideo
		}

		out = append(out, &models.Incident{
			Title:       fmt.Sprintf("Incident Report #%d", id),
			Description: fmt.Sprintf("This is a generated incident report for testing purposes. Report ID: %d", id),
			Location:    places[rng.IntN(len(places))],
			CreatedAt:   now.Add(-time.Duration(rng.Int64N(int64(generatedWindow)))),
			Media: []models.Media{{
				Type:      mediaType,
				URL:       placeholder(fmt.Sprintf("%06x", rng.IntN(0xffffff)), fmt.Sprintf("Evidence+%d", id)),
				Thumbnail: placeholder(fmt.Sprintf("%06x", rng.IntN(0xffffff)), fmt.Sprintf("Thumb+%d", id)),
			}},
			Status:     statuses[rng.IntN(len(statuses))],
			ReportedBy: fmt.Sprintf("Reporter %d", id),
			Category:   category,
			Severity:   severity,
			Tags:       []string{fmt.Sprintf("tag%d", id), string(category), string(severity)},
		})
	}
	return out
}

func location(address string, lat, lng float64) models.Location {
	return models.Location{Address: address, Coordinates: &models.Coordinates{Lat: lat, Lng: lng}}
}

func placeholder(color, text string) string {
	return fmt.Sprintf("https://via.placeholder.com/400x300/%s/ffffff?text=%s", color, text)
}

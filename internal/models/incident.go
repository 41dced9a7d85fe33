package models

import (
	"errors"
	"time"
)

var (
	// ErrNotFound возвращается, когда запись отсутствует в хранилище
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor возвращается, когда курсор пагинации не удалось разобрать
	ErrInvalidCursor = errors.New("invalid pagination cursor")
)

// Status - статус обращения, меняется только действиями офицера
type Status string

const (
	StatusPending       Status = "pending"
	StatusUnderReview   Status = "under_review"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusDismissed     Status = "dismissed"
)

// Valid проверяет, что статус входит в допустимый набор
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusInvestigating, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Rank возвращает вес статуса для сортировки доски (pending выше всех)
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 4
	case StatusUnderReview:
		return 3
	case StatusInvestigating:
		return 2
	case StatusResolved:
		return 1
	}
	return 0
}

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank возвращает вес серьезности: critical=4 ... low=1
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// IsHighPriority - high или critical
func (s Severity) IsHighPriority() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Category - категория обращения, задается при создании
type Category string

const (
	CategoryMisconduct     Category = "misconduct"
	CategoryExcessiveForce Category = "excessive_force"
	CategoryCorruption     Category = "corruption"
	CategoryDiscrimination Category = "discrimination"
	CategoryOther          Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMisconduct, CategoryExcessiveForce, CategoryCorruption, CategoryDiscrimination, CategoryOther:
		return true
	}
	return false
}

// MediaType - тип вложения
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// Media - вложение к обращению. Порядок в срезе совпадает с порядком показа.
type Media struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location - адрес в свободной форме и необязательные координаты
type Location struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Incident - обращение гражданина
type Incident struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	Media       []Media   `json:"media"`
	Status      Status    `json:"status"`
	ReportedBy  string    `json:"reported_by,omitempty"` // пусто - анонимно
	Category    Category  `json:"category"`
	Severity    Severity  `json:"severity"`
	Tags        []string  `json:"tags"`
}

// Anonymous сообщает, что автор обращения не указан
func (i *Incident) Anonymous() bool {
	return i.ReportedBy == ""
}

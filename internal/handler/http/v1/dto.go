package v1

import (
	"time"
)

// MediaResponse DTO вложения обращения
type MediaResponse struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// LocationResponse DTO места происшествия
type LocationResponse struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IncidentResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    LocationResponse `json:"location"`
	CreatedAt   time.Time        `json:"created_at"`
	Media       []MediaResponse  `json:"media"`
	Status      string           `json:"status"`
	Severity    string           `json:"severity"`
	Category    string           `json:"category"`
	ReportedBy  string           `json:"reported_by,omitempty"`
	Anonymous   bool             `json:"anonymous"`
	Tags        []string         `json:"tags"`
}

// PageResponse DTO страницы ленты
// @Description DTO страницы ленты
type PageResponse struct {
	Incidents  []*IncidentResponse `json:"incidents"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

// FeedStateResponse DTO состояния ленты сессии
// @Description DTO состояния ленты сессии
type FeedStateResponse struct {
	SessionID  string              `json:"session_id"`
	Incidents  []*IncidentResponse `json:"incidents"`
	IsLoading  bool                `json:"is_loading"`
	HasMore    bool                `json:"has_more"`
	Dispatched *bool               `json:"dispatched,omitempty"`
}

// ScrollRequest DTO события прокрутки
// @Description DTO события прокрутки
type ScrollRequest struct {
	DistanceToBottom *float64 `json:"distance_to_bottom" validate:"required"`
}

// CountsResponse DTO счетчиков доски
type CountsResponse struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	HighPriority int `json:"high_priority"`
	Recent       int `json:"recent"`
}

// BoardResponse DTO доски офицера
// @Description DTO доски офицера
type BoardResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Counts    CountsResponse      `json:"counts"`
	Districts []string            `json:"districts"`
}

// DashboardResponse DTO сводки дашборда
// @Description DTO сводки дашборда
type DashboardResponse struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	UnderReview   int `json:"under_review"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
	Dismissed     int `json:"dismissed"`
	HighPriority  int `json:"high_priority"`
}

// OfficerLoginRequest DTO входа офицера
// @Description DTO входа офицера
type OfficerLoginRequest struct {
	BadgeNumber string `json:"badge_number" validate:"required,min=2,max=64"`
	Password    string `json:"password" validate:"required"`
}

// OfficerResponse DTO профиля офицера
type OfficerResponse struct {
	UID         string `json:"uid"`
	BadgeNumber string `json:"badge_number"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Rank        string `json:"rank,omitempty"`
	Station     string `json:"station,omitempty"`
	District    string `json:"district,omitempty"`
}

// OfficerLoginResponse DTO ответа на вход
// @Description DTO ответа на вход
type OfficerLoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Officer   OfficerResponse `json:"officer"`
}

// UpdateStatusRequest DTO смены статуса
// @Description DTO смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending under_review investigating resolved dismissed"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateSeverityRequest DTO смены серьезности
// @Description DTO смены серьезности
type UpdateSeverityRequest struct {
	Severity string `json:"severity" validate:"required,oneof=low medium high critical"`
}

// BulkStatusRequest DTO массовой смены статуса
// @Description DTO массовой смены статуса
type BulkStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,uuid"`
	Status string   `json:"status" validate:"required,oneof=pending under_review investigating resolved dismissed"`
	Notes  string   `json:"notes,omitempty" validate:"max=2000"`
}

// BulkStatusResponse DTO результата массовой смены статуса
type BulkStatusResponse struct {
	Updated []*IncidentResponse `json:"updated"`
	Failed  map[string]string   `json:"failed,omitempty"`
}

// AssignRequest DTO назначения офицера
// @Description DTO назначения офицера
type AssignRequest struct {
	BadgeNumber string `json:"badge_number" validate:"required,min=2,max=64"`
}

// ListIncidentsQuery параметры постраничного чтения ленты
type ListIncidentsQuery struct {
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Cursor string `form:"cursor" validate:"omitempty,max=512"`
}

// BoardQuery фильтры и сортировка доски, "all" снимает ограничение
type BoardQuery struct {
	Status       string `form:"status" validate:"omitempty,oneof=all pending under_review investigating resolved dismissed"`
	Severity     string `form:"severity" validate:"omitempty,oneof=all low medium high critical"`
	Category     string `form:"category" validate:"omitempty,oneof=all misconduct excessive_force corruption discrimination other"`
	District     string `form:"district" validate:"max=255"`
	TimeRange    string `form:"timeRange" validate:"omitempty,oneof=all 1h 24h 7d 30d"`
	SortBy       string `form:"sortBy" validate:"omitempty,oneof=timestamp severity status location"`
	AssignedToMe bool   `form:"assignedToMe"`
}

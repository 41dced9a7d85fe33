package models

import "time"

// Officer - профиль офицера
type Officer struct {
	UID         string    `json:"uid"`
	BadgeNumber string    `json:"badge_number"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Rank        string    `json:"rank,omitempty"`
	Station     string    `json:"station,omitempty"`
	District    string    `json:"district,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// BadgeIndexEntry - публичный индекс "номер жетона -> email" для входа
type BadgeIndexEntry struct {
	BadgeNumber string
	UID         string
	Email       string
	IsActive    bool
}

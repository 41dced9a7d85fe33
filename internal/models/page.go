package models

// Cursor - непрозрачный токен последней записи предыдущей страницы.
// Пустая строка означает отсутствие курсора.
type Cursor string

// Page - страница обращений, выданная хранилищем
type Page struct {
	Incidents  []*Incident `json:"incidents"`
	NextCursor Cursor      `json:"next_cursor,omitempty"`
}

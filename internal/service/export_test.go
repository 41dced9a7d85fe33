package service

import "time"

// SetClock подменяет источник времени сервиса в тестах
func SetClock(svc any, now func() time.Time) {
	switch s := svc.(type) {
	case *incidentService:
		s.now = now
	case *authService:
		s.now = now
	}
}

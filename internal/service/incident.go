package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrUnknownAction = errors.New("unknown quick action")

// QuickAction - быстрое действие офицера с доски
type QuickAction string

const (
	ActionClaim    QuickAction = "claim"
	ActionPriority QuickAction = "priority"
	ActionDismiss  QuickAction = "dismiss"
)

// IncidentRepository определяет контракт для работы с бд обращений
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	FetchPage(ctx context.Context, pageSize int, cursor models.Cursor) (*models.Page, error)
	UpdateStatus(ctx context.Context, change *models.StatusChange) error
	UpdateSeverity(ctx context.Context, id string, severity models.Severity) error
	GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id string) error
}

// IncidentService определяет контракт бизнес-логики ленты и действий офицера
type IncidentService interface {
	FetchPage(ctx context.Context, pageSize int, cursor models.Cursor) (*models.Page, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id string, status models.Status, notes, officerBadge string) (*models.Incident, error)
	BulkUpdateStatus(ctx context.Context, ids []string, status models.Status, notes, officerBadge string) *BulkResult
	UpdateSeverity(ctx context.Context, id string, severity models.Severity, officerBadge string) (*models.Incident, error)
	ApplyQuickAction(ctx context.Context, id string, action QuickAction, officerBadge string) (*models.Incident, error)
	AssignOfficer(ctx context.Context, id, assigneeBadge, officerBadge string) error
}

// BulkResult - итог массового изменения статуса
type BulkResult struct {
	Updated []*models.Incident
	Failed  map[string]error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.EventPublisher
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.EventPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// FetchPage возвращает страницу ленты
func (s *incidentService) FetchPage(ctx context.Context, pageSize int, cursor models.Cursor) (*models.Page, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "FetchPage",
		"page_size":  pageSize,
		"has_cursor": cursor != "",
	})
	log.Debug("Fetching incidents page")

	page, err := s.repo.FetchPage(ctx, pageSize, cursor)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incidents page from repository")
		return nil, fmt.Errorf("service: could not fetch incidents page: %w", err)
	}

	log.WithField("count", len(page.Incidents)).Debug("Incidents page fetched")
	return page, nil
}

// GetIncident получает обращение по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// UpdateStatus меняет статус обращения и пишет запись в журнал
func (s *incidentService) UpdateStatus(ctx context.Context, id string, status models.Status, notes, officerBadge string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "UpdateStatus",
		"incident_id":   id,
		"status":        status,
		"officer_badge": officerBadge,
	})
	log.Info("Attempting to update incident status")

	if !status.Valid() {
		return nil, fmt.Errorf("service: invalid status %q", status)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for status update: %w", id, err)
	}

	change := &models.StatusChange{
		IncidentID:   id,
		FromStatus:   existing.Status,
		ToStatus:     status,
		Notes:        notes,
		OfficerBadge: officerBadge,
	}
	if err := s.repo.UpdateStatus(ctx, change); err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	existing.Status = status
	s.afterMutation(ctx, log, existing.ID)
	s.publish(ctx, log, webhook.Event{
		Type:         webhook.EventStatusChanged,
		IncidentID:   id,
		From:         string(change.FromStatus),
		To:           string(status),
		Notes:        notes,
		OfficerBadge: officerBadge,
	})

	log.WithField("from_status", change.FromStatus).Info("Incident status updated successfully")
	return existing, nil
}

// BulkUpdateStatus меняет статус нескольких обращений; ошибки собираются по ID
func (s *incidentService) BulkUpdateStatus(ctx context.Context, ids []string, status models.Status, notes, officerBadge string) *BulkResult {
	result := &BulkResult{
		Updated: make([]*models.Incident, 0, len(ids)),
		Failed:  make(map[string]error),
	}
	for _, id := range ids {
		incident, err := s.UpdateStatus(ctx, id, status, notes, officerBadge)
		if err != nil {
			result.Failed[id] = err
			continue
		}
		result.Updated = append(result.Updated, incident)
	}

	s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "BulkUpdateStatus",
		"status":  status,
		"updated": len(result.Updated),
		"failed":  len(result.Failed),
	}).Info("Bulk status update completed")
	return result
}

// UpdateSeverity меняет серьезность обращения
func (s *incidentService) UpdateSeverity(ctx context.Context, id string, severity models.Severity, officerBadge string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "UpdateSeverity",
		"incident_id":   id,
		"severity":      severity,
		"officer_badge": officerBadge,
	})
	log.Info("Attempting to update incident severity")

	if !severity.Valid() {
		return nil, fmt.Errorf("service: invalid severity %q", severity)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for severity update: %w", id, err)
	}

	if err := s.repo.UpdateSeverity(ctx, id, severity); err != nil {
		log.WithError(err).Error("Failed to update incident severity in repository")
		return nil, fmt.Errorf("service: could not update incident severity: %w", err)
	}

	from := existing.Severity
	existing.Severity = severity
	s.afterMutation(ctx, log, id)
	s.publish(ctx, log, webhook.Event{
		Type:         webhook.EventSeverityChanged,
		IncidentID:   id,
		From:         string(from),
		To:           string(severity),
		OfficerBadge: officerBadge,
	})

	log.Info("Incident severity updated successfully")
	return existing, nil
}

// ApplyQuickAction: claim - на рассмотрение, priority - высокая серьезность, dismiss - отклонить
func (s *incidentService) ApplyQuickAction(ctx context.Context, id string, action QuickAction, officerBadge string) (*models.Incident, error) {
	switch action {
	case ActionClaim:
		return s.UpdateStatus(ctx, id, models.StatusUnderReview, "", officerBadge)
	case ActionPriority:
		return s.UpdateSeverity(ctx, id, models.SeverityHigh, officerBadge)
	case ActionDismiss:
		return s.UpdateStatus(ctx, id, models.StatusDismissed, "", officerBadge)
	}
	return nil, fmt.Errorf("service: %w: %q", ErrUnknownAction, action)
}

// AssignOfficer фиксирует назначение только в логе и событии вебхука:
// закрепление за офицером в модели не хранится.
func (s *incidentService) AssignOfficer(ctx context.Context, id, assigneeBadge, officerBadge string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "incident",
		"method":         "AssignOfficer",
		"incident_id":    id,
		"assignee_badge": assigneeBadge,
		"officer_badge":  officerBadge,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for assignment: %w", id, err)
	}

	s.publish(ctx, log, webhook.Event{
		Type:         webhook.EventAssigned,
		IncidentID:   id,
		To:           assigneeBadge,
		OfficerBadge: officerBadge,
	})
	log.Info("Officer assigned to incident")
	return nil
}

func (s *incidentService) afterMutation(ctx context.Context, log *logrus.Entry, id string) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

// publish не прерывает операцию: ошибка очереди только логируется
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, event webhook.Event) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}

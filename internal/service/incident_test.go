package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service"
	"github.com/shenikar/citizen_watch/internal/service/mocks"
	"github.com/shenikar/citizen_watch/internal/webhook"
	webhook_mocks "github.com/shenikar/citizen_watch/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

// newTestIncidentService - вспомогательная функция для создания сервиса с моками
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewIncidentService(repoMock, logger, publisherMock)
	service.SetClock(svc, func() time.Time { return fixedNow })
	return svc, repoMock, publisherMock
}

func pendingIncident() *models.Incident {
	return &models.Incident{
		ID:        uuid.NewString(),
		Title:     "Грубость при проверке документов",
		Status:    models.StatusPending,
		Severity:  models.SeverityMedium,
		Category:  models.CategoryMisconduct,
		CreatedAt: fixedNow.Add(-time.Hour),
		Location:  models.Location{Address: "Kampala Road, Central Division, Kampala"},
	}
}

func TestFetchPage_ClampsPageSize(t *testing.T) {
	cases := map[string]struct {
		requested int
		expected  int
	}{
		"zero uses default": {0, service.DefaultPageSize},
		"negative":          {-3, service.DefaultPageSize},
		"within range":      {25, 25},
		"above max":         {500, service.MaxPageSize},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Подготовка
			svc, repoMock, _ := newTestIncidentService(t)
			ctx := context.Background()
			page := &models.Page{Incidents: []*models.Incident{pendingIncident()}}

			// Ожидания
			repoMock.EXPECT().FetchPage(ctx, tc.expected, models.Cursor("abc")).Return(page, nil)

			// Действие
			got, err := svc.FetchPage(ctx, tc.requested, "abc")

			// Проверки
			require.NoError(t, err)
			assert.Same(t, page, got)
		})
	}
}

func TestFetchPage_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().FetchPage(ctx, 10, models.Cursor("")).Return(nil, models.ErrInvalidCursor)

	// Действие
	page, err := svc.FetchPage(ctx, 10, "")

	// Проверки
	assert.Nil(t, page)
	assert.ErrorIs(t, err, models.ErrInvalidCursor)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := pendingIncident()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, expected.ID).Return(expected, nil).Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, expected.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := pendingIncident()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, expected.ID).Return(nil, nil)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, expected.ID).Return(expected, nil)
	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil)

	// Действие
	incident, err := svc.GetIncident(ctx, expected.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := pendingIncident()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, expected.ID).Return(nil, errors.New("redis down"))
	repoMock.EXPECT().GetByID(ctx, expected.ID).Return(expected, nil)
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(errors.New("redis down"))

	// Действие
	incident, err := svc.GetIncident(ctx, expected.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.NewString()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, id).Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)

	// Действие
	incident, err := svc.GetIncident(ctx, id)

	// Проверки
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatus_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	existing := pendingIncident()
	var change *models.StatusChange
	var event webhook.Event

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
	repoMock.EXPECT().UpdateStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.StatusChange) error {
			change = c
			return nil
		})
	repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			event = e
			return nil
		})

	// Действие
	updated, err := svc.UpdateStatus(ctx, existing.ID, models.StatusInvestigating, "выехал наряд", "KLA-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusInvestigating, updated.Status)

	require.NotNil(t, change)
	assert.Equal(t, models.StatusPending, change.FromStatus)
	assert.Equal(t, models.StatusInvestigating, change.ToStatus)
	assert.Equal(t, "выехал наряд", change.Notes)
	assert.Equal(t, "KLA-001", change.OfficerBadge)

	assert.Equal(t, webhook.EventStatusChanged, event.Type)
	assert.Equal(t, existing.ID, event.IncidentID)
	assert.Equal(t, "pending", event.From)
	assert.Equal(t, "investigating", event.To)
	assert.Equal(t, fixedNow, event.Timestamp)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestIncidentService(t)

	// Действие
	updated, err := svc.UpdateStatus(context.Background(), uuid.NewString(), models.Status("closed"), "", "KLA-001")

	// Проверки
	assert.Nil(t, updated)
	assert.Error(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	id := uuid.NewString()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)

	// Действие
	_, err := svc.UpdateStatus(ctx, id, models.StatusResolved, "", "KLA-001")

	// Проверки
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatus_PublishErrorIsNotFatal(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	existing := pendingIncident()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
	repoMock.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(errors.New("redis down"))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	// Действие
	updated, err := svc.UpdateStatus(ctx, existing.ID, models.StatusResolved, "", "KLA-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
}

func TestBulkUpdateStatus_CollectsFailures(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	first := pendingIncident()
	missing := uuid.NewString()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, first.ID).Return(first, nil)
	repoMock.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, first.ID).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().GetByID(ctx, missing).Return(nil, models.ErrNotFound)

	// Действие
	result := svc.BulkUpdateStatus(ctx, []string{first.ID, missing}, models.StatusDismissed, "дубликат", "KLA-001")

	// Проверки
	require.Len(t, result.Updated, 1)
	assert.Equal(t, first.ID, result.Updated[0].ID)
	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[missing], models.ErrNotFound)
}

func TestUpdateSeverity_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	existing := pendingIncident()
	var event webhook.Event

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
	repoMock.EXPECT().UpdateSeverity(ctx, existing.ID, models.SeverityCritical).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			event = e
			return nil
		})

	// Действие
	updated, err := svc.UpdateSeverity(ctx, existing.ID, models.SeverityCritical, "KLA-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SeverityCritical, updated.Severity)
	assert.Equal(t, webhook.EventSeverityChanged, event.Type)
	assert.Equal(t, "medium", event.From)
	assert.Equal(t, "critical", event.To)
}

func TestApplyQuickAction(t *testing.T) {
	t.Run("claim moves to under_review", func(t *testing.T) {
		svc, repoMock, publisherMock := newTestIncidentService(t)
		ctx := context.Background()
		existing := pendingIncident()

		repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
		repoMock.EXPECT().UpdateStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.StatusChange) error {
				assert.Equal(t, models.StatusUnderReview, c.ToStatus)
				return nil
			})
		repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(nil)
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		updated, err := svc.ApplyQuickAction(ctx, existing.ID, service.ActionClaim, "KLA-001")

		require.NoError(t, err)
		assert.Equal(t, models.StatusUnderReview, updated.Status)
	})

	t.Run("priority raises severity to high", func(t *testing.T) {
		svc, repoMock, publisherMock := newTestIncidentService(t)
		ctx := context.Background()
		existing := pendingIncident()

		repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
		repoMock.EXPECT().UpdateSeverity(ctx, existing.ID, models.SeverityHigh).Return(nil)
		repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(nil)
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		updated, err := svc.ApplyQuickAction(ctx, existing.ID, service.ActionPriority, "KLA-001")

		require.NoError(t, err)
		assert.Equal(t, models.SeverityHigh, updated.Severity)
		assert.Equal(t, models.StatusPending, updated.Status)
	})

	t.Run("dismiss", func(t *testing.T) {
		svc, repoMock, publisherMock := newTestIncidentService(t)
		ctx := context.Background()
		existing := pendingIncident()

		repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
		repoMock.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
		repoMock.EXPECT().InvalidateIncidentCache(ctx, existing.ID).Return(nil)
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		updated, err := svc.ApplyQuickAction(ctx, existing.ID, service.ActionDismiss, "KLA-001")

		require.NoError(t, err)
		assert.Equal(t, models.StatusDismissed, updated.Status)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc, _, _ := newTestIncidentService(t)

		_, err := svc.ApplyQuickAction(context.Background(), uuid.NewString(), service.QuickAction("escalate"), "KLA-001")

		assert.ErrorIs(t, err, service.ErrUnknownAction)
	})
}

func TestAssignOfficer_PublishesEventOnly(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	existing := pendingIncident()
	var event webhook.Event

	// Ожидания: никаких записей в бд, только событие
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			event = e
			return nil
		})

	// Действие
	err := svc.AssignOfficer(ctx, existing.ID, "KLA-042", "KLA-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, webhook.EventAssigned, event.Type)
	assert.Equal(t, "KLA-042", event.To)
	assert.Equal(t, "KLA-001", event.OfficerBadge)
}

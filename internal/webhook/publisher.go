package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

const (
	webhookQueueKey = "incident_webhook_events"
)

// EventType - вид изменения обращения
type EventType string

const (
	EventStatusChanged   EventType = "status_changed"
	EventSeverityChanged EventType = "severity_changed"
	EventAssigned        EventType = "assigned"
)

// Event - данные вебхука об изменении обращения офицером
type Event struct {
	Type         EventType `json:"type"`
	IncidentID   string    `json:"incident_id"`
	From         string    `json:"from,omitempty"`
	To           string    `json:"to"`
	Notes        string    `json:"notes,omitempty"`
	OfficerBadge string    `json:"officer_badge"`
	Timestamp    time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации вебхуков
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher на списке Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди, воркер забирает справа
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

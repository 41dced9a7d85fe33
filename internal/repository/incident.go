package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service"
)

const incidentColumns = `
	i.id::text,
	i.title,
	i.description,
	i.address,
	i.latitude,
	i.longitude,
	i.status,
	i.severity,
	i.category,
	i.reported_by,
	i.tags,
	i.created_at,
	COALESCE((
		SELECT json_agg(json_build_object(
			'type', m.media_type,
			'url', m.url,
			'thumbnail', COALESCE(m.thumbnail, '')
		) ORDER BY m.position)
		FROM incident_media m
		WHERE m.incident_id = i.id
	), '[]'::json) AS media`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает обращение вместе с вложениями в одной транзакции
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	var lat, lng *float64
	if c := incident.Location.Coordinates; c != nil {
		lat, lng = &c.Lat, &c.Lng
	}
	var createdAt *time.Time
	if !incident.CreatedAt.IsZero() {
		createdAt = &incident.CreatedAt
	}
	tags := incident.Tags
	if tags == nil {
		tags = []string{}
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO incidents (title, description, address, latitude, longitude, status, severity, category, reported_by, tags, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, NOW()))
			RETURNING id::text, created_at;
		`
		err := tx.QueryRow(ctx, query,
			incident.Title,
			incident.Description,
			incident.Location.Address,
			lat,
			lng,
			incident.Status,
			incident.Severity,
			incident.Category,
			nullable(incident.ReportedBy),
			tags,
			createdAt,
		).Scan(&incident.ID, &incident.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create incident: %w", err)
		}

		for pos, m := range incident.Media {
			_, err := tx.Exec(ctx, `
				INSERT INTO incident_media (incident_id, position, media_type, url, thumbnail)
				VALUES ($1, $2, $3, $4, $5);
			`, incident.ID, pos, m.Type, m.URL, nullable(m.Thumbnail))
			if err != nil {
				return fmt.Errorf("failed to attach media to incident: %w", err)
			}
		}
		return nil
	})
}

// GetByID возвращает обращение по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents i WHERE i.id = $1::uuid;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// FetchPage возвращает страницу ленты, новые сверху. Курсор - позиция
// последней записи предыдущей страницы, пустой курсор - начало ленты.
func (r *IncidentRepository) FetchPage(ctx context.Context, pageSize int, cursor models.Cursor) (*models.Page, error) {
	var after *time.Time
	var afterID *string
	if cursor != "" {
		ks, err := decodeCursor(cursor)
		if err != nil {
			return nil, err
		}
		after, afterID = &ks.CreatedAt, &ks.ID
	}

	query := `SELECT ` + incidentColumns + `
		FROM incidents i
		WHERE $2::timestamptz IS NULL OR (i.created_at, i.id) < ($2::timestamptz, $3::uuid)
		ORDER BY i.created_at DESC, i.id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, pageSize, after, afterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incidents page: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0, pageSize)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error page iteration: %w", err)
	}

	page := &models.Page{Incidents: incidents}
	if n := len(incidents); n > 0 {
		last := incidents[n-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	return page, nil
}

// UpdateStatus меняет статус и пишет запись журнала в одной транзакции.
// FromStatus берется из строки под блокировкой.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, change *models.StatusChange) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT status FROM incidents WHERE id = $1::uuid FOR UPDATE;`,
			change.IncidentID,
		).Scan(&change.FromStatus)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("incident with id %s not found for update: %w", change.IncidentID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to lock incident: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE incidents SET status = $1, updated_at = NOW() WHERE id = $2::uuid;`,
			change.ToStatus, change.IncidentID,
		); err != nil {
			return fmt.Errorf("failed to update incident status: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO incident_status_history (incident_id, from_status, to_status, notes, officer_badge)
			VALUES ($1::uuid, $2, $3, $4, $5) RETURNING id, changed_at;
		`, change.IncidentID, change.FromStatus, change.ToStatus, change.Notes, change.OfficerBadge,
		).Scan(&change.ID, &change.ChangedAt)
		if err != nil {
			return fmt.Errorf("failed to save status change: %w", err)
		}
		return nil
	})
}

func (r *IncidentRepository) UpdateSeverity(ctx context.Context, id string, severity models.Severity) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET severity = $1, updated_at = NOW() WHERE id = $2::uuid;`,
		severity, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident severity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}

// GetIncidentFromCache пытается получить обращение из Redis, промах - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет обращение в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет обращение из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func incidentCacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var (
		lat, lng   *float64
		reportedBy *string
		media      []byte
	)
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Location.Address,
		&lat,
		&lng,
		&incident.Status,
		&incident.Severity,
		&incident.Category,
		&reportedBy,
		&incident.Tags,
		&incident.CreatedAt,
		&media,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		incident.Location.Coordinates = &models.Coordinates{Lat: *lat, Lng: *lng}
	}
	if reportedBy != nil {
		incident.ReportedBy = *reportedBy
	}
	if err := json.Unmarshal(media, &incident.Media); err != nil {
		return nil, fmt.Errorf("failed to decode incident media: %w", err)
	}
	return incident, nil
}

// nullable превращает пустую строку в NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

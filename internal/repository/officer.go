package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service"
)

type OfficerRepository struct {
	db *pgxpool.Pool
}

func NewOfficerRepository(db *pgxpool.Pool) service.OfficerRepository {
	return &OfficerRepository{db: db}
}

// GetBadgeIndex возвращает запись индекса жетонов
func (r *OfficerRepository) GetBadgeIndex(ctx context.Context, badgeNumber string) (*models.BadgeIndexEntry, error) {
	entry := &models.BadgeIndexEntry{}
	var email *string
	err := r.db.QueryRow(ctx, `
		SELECT badge_number, uid::text, email, is_active
		FROM badge_index
		WHERE badge_number = $1;
	`, badgeNumber).Scan(&entry.BadgeNumber, &entry.UID, &email, &entry.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("badge %s: %w", badgeNumber, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get badge index entry: %w", err)
	}
	if email != nil {
		entry.Email = *email
	}
	return entry, nil
}

func (r *OfficerRepository) GetOfficerByBadge(ctx context.Context, badgeNumber string) (*models.Officer, error) {
	o := &models.Officer{}
	err := r.db.QueryRow(ctx, `
		SELECT uid::text, badge_number, email, name, display_name, phone, photo_url, rank, station, district, is_active, created_at
		FROM officers
		WHERE badge_number = $1;
	`, badgeNumber).Scan(
		&o.UID,
		&o.BadgeNumber,
		&o.Email,
		&o.Name,
		&o.DisplayName,
		&o.Phone,
		&o.PhotoURL,
		&o.Rank,
		&o.Station,
		&o.District,
		&o.IsActive,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("officer with badge %s: %w", badgeNumber, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get officer by badge: %w", err)
	}
	return o, nil
}

func (r *OfficerRepository) GetPasswordHash(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT password_hash FROM officers WHERE email = $1;`, email).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("officer with email %s: %w", email, models.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// CreateOfficer пишет профиль и запись индекса жетонов в одной транзакции
func (r *OfficerRepository) CreateOfficer(ctx context.Context, officer *models.Officer, passwordHash string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO officers (badge_number, email, password_hash, name, display_name, phone, photo_url, rank, station, district, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING uid::text, created_at;
		`,
			officer.BadgeNumber,
			officer.Email,
			passwordHash,
			officer.Name,
			officer.DisplayName,
			officer.Phone,
			officer.PhotoURL,
			officer.Rank,
			officer.Station,
			officer.District,
			officer.IsActive,
		).Scan(&officer.UID, &officer.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create officer: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO badge_index (badge_number, uid, email, is_active)
			VALUES ($1, $2::uuid, $3, $4);
		`, officer.BadgeNumber, officer.UID, officer.Email, officer.IsActive); err != nil {
			return fmt.Errorf("failed to index officer badge: %w", err)
		}
		return nil
	})
}

// SetOfficerActive синхронно меняет флаг в профиле и в индексе
func (r *OfficerRepository) SetOfficerActive(ctx context.Context, badgeNumber string, active bool) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `UPDATE officers SET is_active = $1 WHERE badge_number = $2;`, active, badgeNumber)
		if err != nil {
			return fmt.Errorf("failed to update officer: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("officer with badge %s: %w", badgeNumber, models.ErrNotFound)
		}
		if _, err := tx.Exec(ctx, `UPDATE badge_index SET is_active = $1 WHERE badge_number = $2;`, active, badgeNumber); err != nil {
			return fmt.Errorf("failed to update badge index: %w", err)
		}
		return nil
	})
}

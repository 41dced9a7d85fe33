package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/citizen_watch/internal/models"
)

// keyset - позиция последней записи страницы при сортировке (created_at DESC, id DESC)
type keyset struct {
	CreatedAt time.Time `json:"t"`
	ID        string    `json:"id"`
}

// encodeCursor упаковывает позицию в непрозрачный токен
func encodeCursor(createdAt time.Time, id string) models.Cursor {
	payload, _ := json.Marshal(keyset{CreatedAt: createdAt.UTC(), ID: id})
	return models.Cursor(base64.RawURLEncoding.EncodeToString(payload))
}

// decodeCursor разбирает токен, выданный encodeCursor
func decodeCursor(cursor models.Cursor) (*keyset, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(cursor))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidCursor, err)
	}
	var ks keyset
	if err := json.Unmarshal(raw, &ks); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidCursor, err)
	}
	if ks.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: missing timestamp", models.ErrInvalidCursor)
	}
	if _, err := uuid.Parse(ks.ID); err != nil {
		return nil, fmt.Errorf("%w: bad id", models.ErrInvalidCursor)
	}
	return &ks, nil
}

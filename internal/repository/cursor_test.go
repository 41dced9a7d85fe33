package repository

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	id := uuid.NewString()
	createdAt := time.Date(2024, 1, 15, 14, 30, 0, 123456000, time.FixedZone("EAT", 3*3600))

	cursor := encodeCursor(createdAt, id)
	ks, err := decodeCursor(cursor)

	require.NoError(t, err)
	assert.Equal(t, id, ks.ID)
	assert.True(t, createdAt.Equal(ks.CreatedAt))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	cases := map[string]models.Cursor{
		"not base64":   "%%%",
		"not json":     models.Cursor(base64.RawURLEncoding.EncodeToString([]byte("plain"))),
		"no timestamp": models.Cursor(base64.RawURLEncoding.EncodeToString([]byte(`{"id":"` + uuid.NewString() + `"}`))),
		"bad id":       models.Cursor(base64.RawURLEncoding.EncodeToString([]byte(`{"t":"2024-01-15T14:30:00Z","id":"x"}`))),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCursor(cursor)
			assert.ErrorIs(t, err, models.ErrInvalidCursor)
		})
	}
}

package demo

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shenikar/citizen_watch/internal/noticeboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidents_Valid(t *testing.T) {
	items := Incidents()
	require.Len(t, items, 5)

	for _, item := range items {
		assert.True(t, item.Status.Valid(), item.Title)
		assert.True(t, item.Severity.Valid(), item.Title)
		assert.True(t, item.Category.Valid(), item.Title)
		assert.NotEmpty(t, item.Media, item.Title)
	}
	assert.Equal(t,
		[]string{"Central Division", "Nakawa Division", "Jinja Municipality", "Makindye Division", "Kawempe Division"},
		noticeboard.Districts(items))
}

func TestGenerate_Deterministic(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

	a := Generate(rand.New(rand.NewPCG(1, 2)), 6, 20, now)
	b := Generate(rand.New(rand.NewPCG(1, 2)), 6, 20, now)

	require.Len(t, a, 20)
	assert.Equal(t, a, b)
	for _, item := range a {
		assert.True(t, item.Status.Valid())
		assert.True(t, item.Severity.Valid())
		assert.False(t, item.CreatedAt.After(now))
		assert.True(t, now.Sub(item.CreatedAt) <= generatedWindow)
	}
	assert.Equal(t, "Incident Report #6", a[0].Title)
}

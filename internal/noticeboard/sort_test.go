package noticeboard

import (
	"testing"
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSort_TimestampNewestFirst(t *testing.T) {
	items := sampleBoard()
	// Перемешиваем порядок
	shuffled := []*models.Incident{items[3], items[0], items[4], items[2], items[1]}

	sorted := Sort(shuffled, SortByTimestamp)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i-1].CreatedAt.Before(sorted[i].CreatedAt),
			"%s must not be older than %s", sorted[i-1].ID, sorted[i].ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(sorted))
}

func TestSort_SeverityRank(t *testing.T) {
	items := []*models.Incident{
		incident("low", models.StatusPending, models.SeverityLow, time.Hour, ""),
		incident("critical", models.StatusPending, models.SeverityCritical, time.Hour, ""),
		incident("medium", models.StatusPending, models.SeverityMedium, time.Hour, ""),
	}

	sorted := Sort(items, SortBySeverity)

	assert.Equal(t, []string{"critical", "medium", "low"}, ids(sorted))
}

func TestSort_StatusRank(t *testing.T) {
	items := []*models.Incident{
		incident("dismissed", models.StatusDismissed, models.SeverityLow, time.Hour, ""),
		incident("resolved", models.StatusResolved, models.SeverityLow, time.Hour, ""),
		incident("pending", models.StatusPending, models.SeverityLow, time.Hour, ""),
		incident("investigating", models.StatusInvestigating, models.SeverityLow, time.Hour, ""),
		incident("under_review", models.StatusUnderReview, models.SeverityLow, time.Hour, ""),
	}

	sorted := Sort(items, SortByStatus)

	assert.Equal(t, []string{"pending", "under_review", "investigating", "resolved", "dismissed"}, ids(sorted))
}

func TestSort_LocationAscending(t *testing.T) {
	items := []*models.Incident{
		incident("3", models.StatusPending, models.SeverityLow, time.Hour, "entebbe Road"),
		incident("1", models.StatusPending, models.SeverityLow, time.Hour, "Acacia Avenue"),
		incident("2", models.StatusPending, models.SeverityLow, time.Hour, "Bombo Road"),
	}

	sorted := Sort(items, SortByLocation)

	assert.Equal(t, []string{"1", "2", "3"}, ids(sorted))
}

func TestSort_StableForEqualKeys(t *testing.T) {
	items := []*models.Incident{
		incident("first", models.StatusPending, models.SeverityHigh, 2*time.Hour, ""),
		incident("second", models.StatusPending, models.SeverityHigh, time.Hour, ""),
		incident("third", models.StatusPending, models.SeverityHigh, 3*time.Hour, ""),
	}

	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(items, SortBySeverity)))
	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(items, SortByStatus)))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	items := sampleBoard()
	shuffled := []*models.Incident{items[2], items[0], items[1]}

	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(shuffled, SortKey("random"))))
}

func TestSort_EmptyInput(t *testing.T) {
	sorted := Sort(nil, SortByTimestamp)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByTimestamp, ParseSortKey(""))
	assert.Equal(t, SortByLocation, ParseSortKey("location"))
	assert.True(t, SortBySeverity.Valid())
	assert.False(t, SortKey("priority").Valid())
}

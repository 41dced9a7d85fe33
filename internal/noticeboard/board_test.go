package noticeboard

import (
	"testing"
	"time"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func incident(id string, status models.Status, severity models.Severity, age time.Duration, address string) *models.Incident {
	return &models.Incident{
		ID:        id,
		Status:    status,
		Severity:  severity,
		Category:  models.CategoryMisconduct,
		CreatedAt: now.Add(-age),
		Location:  models.Location{Address: address},
	}
}

func ids(items []*models.Incident) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

// sampleBoard - набор обращений для проверок доски
func sampleBoard() []*models.Incident {
	return []*models.Incident{
		incident("a", models.StatusPending, models.SeverityHigh, 30*time.Minute, "Kampala Road, Central Division, Kampala District"),
		incident("b", models.StatusResolved, models.SeverityLow, 3*time.Hour, "Entebbe Road, Makindye Division, Kampala District"),
		incident("c", models.StatusPending, models.SeverityCritical, 48*time.Hour, "Jinja Road, Nakawa Division, Kampala District"),
		incident("d", models.StatusDismissed, models.SeverityMedium, 10*24*time.Hour, "Gulu Highway"),
		incident("e", models.StatusUnderReview, models.SeverityHigh, 40*24*time.Hour, "Bombo Road, Kawempe Division, Kampala District"),
	}
}

func TestApply_NoFiltersKeepsEverything(t *testing.T) {
	items := sampleBoard()

	result := Apply(items, Filters{}, SortByTimestamp, now)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(result.Incidents))
	assert.Equal(t, Counts{Total: 5, Pending: 2, HighPriority: 3, Recent: 2}, result.Counts)
}

func TestApply_StatusFilterPending(t *testing.T) {
	statuses := []models.Status{
		models.StatusPending, models.StatusPending, models.StatusResolved, models.StatusDismissed, models.StatusPending,
	}
	items := make([]*models.Incident, len(statuses))
	for i, s := range statuses {
		items[i] = incident(string(rune('a'+i)), s, models.SeverityLow, time.Hour, "")
	}

	result := Apply(items, Filters{Status: models.StatusPending}, SortByTimestamp, now)

	require.Len(t, result.Incidents, 3)
	for _, item := range result.Incidents {
		assert.Equal(t, models.StatusPending, item.Status)
	}
	assert.Equal(t, 3, result.Counts.Total)
	assert.Equal(t, 3, result.Counts.Pending)
}

func TestApply_OutputIsSubsetSatisfyingFilters(t *testing.T) {
	items := sampleBoard()
	cases := []Filters{
		{Severity: models.SeverityHigh},
		{Category: models.CategoryMisconduct, TimeRange: TimeRangeLastDay},
		{District: "Central Division"},
		{Status: models.StatusPending, Severity: models.SeverityCritical},
		{TimeRange: TimeRangeLastMonth, Status: models.StatusUnderReview},
		{Category: models.CategoryCorruption},
	}

	input := make(map[*models.Incident]bool, len(items))
	for _, item := range items {
		input[item] = true
	}

	for _, filters := range cases {
		result := Apply(items, filters, SortBySeverity, now)
		for _, item := range result.Incidents {
			assert.True(t, input[item], "record %s was not in the input", item.ID)
			assert.True(t, filters.Match(item, now), "record %s does not satisfy %+v", item.ID, filters)
		}
		assert.Equal(t, len(result.Incidents), result.Counts.Total)
	}
}

func TestApply_CountsUseFilteredSet(t *testing.T) {
	items := sampleBoard()

	result := Apply(items, Filters{Severity: models.SeverityHigh}, SortByTimestamp, now)

	// Отфильтрованы только a (pending, 30m) и e (under_review, 40d)
	assert.Equal(t, []string{"a", "e"}, ids(result.Incidents))
	assert.Equal(t, Counts{Total: 2, Pending: 1, HighPriority: 2, Recent: 1}, result.Counts)
}

func TestApply_TimeRanges(t *testing.T) {
	items := sampleBoard()
	cases := map[TimeRange][]string{
		TimeRangeLastHour:  {"a"},
		TimeRangeLastDay:   {"a", "b"},
		TimeRangeLastWeek:  {"a", "b", "c"},
		TimeRangeLastMonth: {"a", "b", "c", "d"},
	}
	for tr, expected := range cases {
		t.Run(string(tr), func(t *testing.T) {
			result := Apply(items, Filters{TimeRange: tr}, SortByTimestamp, now)
			assert.Equal(t, expected, ids(result.Incidents))
		})
	}
}

func TestApply_TimeRangeBoundaryIsInclusive(t *testing.T) {
	items := []*models.Incident{incident("edge", models.StatusPending, models.SeverityLow, time.Hour, "")}

	result := Apply(items, Filters{TimeRange: TimeRangeLastHour}, SortByTimestamp, now)

	assert.Len(t, result.Incidents, 1)
}

func TestApply_MalformedTimestampFailsTimeFilter(t *testing.T) {
	broken := &models.Incident{ID: "broken", Status: models.StatusPending}
	items := []*models.Incident{broken}

	assert.Empty(t, Apply(items, Filters{TimeRange: TimeRangeLastMonth}, SortByTimestamp, now).Incidents)

	// Без фильтра времени запись остается, но не считается недавней
	result := Apply(items, Filters{}, SortByTimestamp, now)
	assert.Len(t, result.Incidents, 1)
	assert.Equal(t, 0, result.Counts.Recent)
}

func TestApply_UnknownTimeRangeExcludes(t *testing.T) {
	items := sampleBoard()
	assert.Empty(t, Apply(items, Filters{TimeRange: "2y"}, SortByTimestamp, now).Incidents)
}

func TestApply_DistrictFilter(t *testing.T) {
	items := sampleBoard()

	result := Apply(items, Filters{District: "Central Division"}, SortByTimestamp, now)
	assert.Equal(t, []string{"a"}, ids(result.Incidents))

	// Адрес без запятой не проходит конкретный фильтр района
	result = Apply(items, Filters{District: "Gulu Highway"}, SortByTimestamp, now)
	assert.Empty(t, result.Incidents)
}

func TestApply_AssignedToMeIsNoop(t *testing.T) {
	items := sampleBoard()

	with := Apply(items, Filters{AssignedToMe: true}, SortByTimestamp, now)
	without := Apply(items, Filters{}, SortByTimestamp, now)

	assert.Equal(t, ids(without.Incidents), ids(with.Incidents))
	assert.Equal(t, without.Counts, with.Counts)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleBoard()
	before := ids(items)

	Apply(items, Filters{}, SortByLocation, now)
	Apply(items, Filters{}, SortBySeverity, now)

	assert.Equal(t, before, ids(items))
}

func TestApply_RecomputesAfterMutation(t *testing.T) {
	items := sampleBoard()
	pending := Apply(items, Filters{Status: models.StatusPending}, SortByTimestamp, now)
	require.Len(t, pending.Incidents, 2)

	items[0].Status = models.StatusDismissed

	pending = Apply(items, Filters{Status: models.StatusPending}, SortByTimestamp, now)
	assert.Equal(t, []string{"c"}, ids(pending.Incidents))
}

func TestApply_SkipsNilRecords(t *testing.T) {
	items := []*models.Incident{nil, incident("a", models.StatusPending, models.SeverityLow, time.Hour, "")}

	result := Apply(items, Filters{}, SortByTimestamp, now)

	assert.Equal(t, []string{"a"}, ids(result.Incidents))
}

func TestParseFilters(t *testing.T) {
	f := ParseFilters("all", "high", " all ", "Central Division", "24h", true)

	assert.Equal(t, models.Status(""), f.Status)
	assert.Equal(t, models.SeverityHigh, f.Severity)
	assert.Equal(t, models.Category(""), f.Category)
	assert.Equal(t, "Central Division", f.District)
	assert.Equal(t, TimeRangeLastDay, f.TimeRange)
	assert.True(t, f.AssignedToMe)
	assert.False(t, f.IsZero())

	assert.True(t, ParseFilters("", "all", "", "all", "all", false).IsZero())
}

func TestTimeRangeValid(t *testing.T) {
	assert.True(t, TimeRangeAny.Valid())
	assert.True(t, TimeRangeLastWeek.Valid())
	assert.False(t, TimeRange("1y").Valid())
}

func TestSummarize(t *testing.T) {
	stats := Summarize(append(sampleBoard(), nil))

	assert.Equal(t, DashboardStats{
		Total:         5,
		Pending:       2,
		UnderReview:   1,
		Investigating: 0,
		Resolved:      1,
		Dismissed:     1,
		HighPriority:  3,
	}, stats)
}

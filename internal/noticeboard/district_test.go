package noticeboard

import (
	"testing"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistrictOf(t *testing.T) {
	cases := []struct {
		name     string
		address  string
		district string
		ok       bool
	}{
		{"full address", "Kampala Road, Central Division, Kampala District", "Central Division", true},
		{"two segments", "Main Street,  Nakawa Division ", "Nakawa Division", true},
		{"no comma", "Gulu Highway", "", false},
		{"empty segment", "Main Street, , Kampala", "", false},
		{"empty address", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			district, ok := DistrictOf(tc.address)
			assert.Equal(t, tc.district, district)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestDistricts_UniqueInFirstSeenOrder(t *testing.T) {
	items := []*models.Incident{
		{Location: models.Location{Address: "A St, Nakawa Division, Kampala"}},
		{Location: models.Location{Address: "Gulu Highway"}},
		{Location: models.Location{Address: "B St, Central Division, Kampala"}},
		{Location: models.Location{Address: "C St, Nakawa Division, Kampala"}},
	}

	assert.Equal(t, []string{"Nakawa Division", "Central Division"}, Districts(items))
	assert.Empty(t, Districts(nil))
}

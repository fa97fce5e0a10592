package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryMood(t *testing.T) {
	s := Spot{Moods: []string{"Melancholic", "Majestic"}}
	assert.Equal(t, "Melancholic", s.PrimaryMood())

	assert.Equal(t, "", Spot{}.PrimaryMood())
}

func TestArea(t *testing.T) {
	s := Spot{Place: "Pariser Platz, Berlin"}
	assert.Equal(t, "Pariser Platz", s.Area())

	s = Spot{Place: "Tiergarten"}
	assert.Equal(t, "Tiergarten", s.Area())

	assert.Equal(t, "", Spot{}.Area())
}

func TestCuratedDataset(t *testing.T) {
	spots := Curated()
	assert.NotEmpty(t, spots)

	seen := make(map[int64]bool)
	for _, s := range spots {
		assert.False(t, seen[s.ID], "duplicate id %d", s.ID)
		seen[s.ID] = true

		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Place)
		assert.NotEmpty(t, s.Moods, "%s has no moods", s.Title)
		assert.NotEmpty(t, s.Weather, "%s has no weather tags", s.Title)
		assert.NotEmpty(t, s.Seasons, "%s has no season tags", s.Title)
		assert.NotEmpty(t, s.Times, "%s has no time tags", s.Title)
	}
}

func TestCuratedReturnsCopy(t *testing.T) {
	first := Curated()
	first[0].Title = "mutated"

	second := Curated()
	assert.NotEqual(t, "mutated", second[0].Title)
}

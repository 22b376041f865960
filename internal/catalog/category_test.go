package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, []Category{Webinar, Mentorship, Placement}, Categories())
	assert.Equal(t, "webinars", Webinar.String())
	assert.Equal(t, "Mentorships", Mentorship.Title())
	assert.Equal(t, "💼", Placement.Icon())
	assert.Empty(t, Category(9).Title())
	assert.False(t, Category(3).Valid())
}

func TestCategoryCycling(t *testing.T) {
	assert.Equal(t, Mentorship, Webinar.Next())
	assert.Equal(t, Webinar, Placement.Next())
	assert.Equal(t, Placement, Webinar.Prev())
	assert.Equal(t, Webinar, Category(-4).Next())
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"webinars":    Webinar,
		"Webinar":     Webinar,
		" MENTORSHIP": Mentorship,
		"placements":  Placement,
	} {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCategory("events")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("placements")))
	assert.Equal(t, Placement, c)
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "placements", string(text))

	_, err = Category(7).MarshalText()
	assert.Error(t, err)
}

type categoryNames struct{}

func (categoryNames) Webinars() string    { return "w" }
func (categoryNames) Mentorships() string { return "m" }
func (categoryNames) Placements() string  { return "p" }

func TestVisitCategory(t *testing.T) {
	got, ok := VisitCategory[string](Mentorship, categoryNames{})
	assert.True(t, ok)
	assert.Equal(t, "m", got)

	got, ok = VisitCategory[string](Category(5), categoryNames{})
	assert.False(t, ok)
	assert.Empty(t, got)
}

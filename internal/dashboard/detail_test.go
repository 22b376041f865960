package dashboard

import (
	"testing"

	"alumnidash/internal/catalog"
	"alumnidash/internal/status"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDetail_RoundTripsEveryRecord(t *testing.T) {
	c := catalog.Default()
	for _, cat := range catalog.Categories() {
		for _, r := range c.Collection(cat) {
			s := Reduce(Initial(), SelectCategory{cat})
			s = Reduce(s, SelectRecord{ID: r.RecordID()})

			v, ok := CurrentDetail(s, c)
			require.True(t, ok, "%s id=%d", cat, r.RecordID())
			if diff := cmp.Diff(r, v.Record, cmp.AllowUnexported(catalog.Date{})); diff != "" {
				t.Errorf("%s id=%d: detail record differs (-want +got):\n%s", cat, r.RecordID(), diff)
			}
			assert.Equal(t, r.RecordID(), v.ID)
			assert.Equal(t, cat, v.Category)
		}
	}
}

func TestCurrentDetail_WebinarOnHold(t *testing.T) {
	c := catalog.Default()
	s := Reduce(Initial(), SelectCategory{catalog.Webinar})
	s = Reduce(s, SelectRecord{ID: 3})

	v, ok := CurrentDetail(s, c)
	require.True(t, ok)

	assert.Equal(t, "Cybersecurity Trends 2025", v.Heading)
	assert.Equal(t, "On Hold", v.Badge.Label)
	assert.Equal(t, "⏸", v.Badge.Symbol)

	statusText, _ := v.Field("Status")
	assert.Equal(t, "⏸ On Hold", statusText)
	postponed, _ := v.Field("Postponed Sessions")
	assert.Equal(t, "1", postponed)
	topic, _ := v.Field("Topic")
	assert.Equal(t, "Latest Cybersecurity Threats", topic)

	// The overlay spells out the date; cards abbreviate it.
	date, _ := v.Field("Date")
	assert.Equal(t, "Friday, January 10, 2025", date)
}

func TestCurrentDetail_ClosedAfterCategorySwitch(t *testing.T) {
	c := catalog.Default()
	s := Reduce(Initial(), SelectCategory{catalog.Mentorship})
	s = Reduce(s, SelectRecord{ID: 2})

	v, ok := CurrentDetail(s, c)
	require.True(t, ok)
	mentor, _ := v.Field("Mentor")
	assert.Equal(t, "Mr. Karthik Raj", mentor)

	s = Reduce(s, SelectCategory{catalog.Placement})
	assert.False(t, IsOpen(s))
	_, ok = CurrentDetail(s, c)
	assert.False(t, ok)
}

func TestCurrentDetail_StaleIDRendersNothing(t *testing.T) {
	c := catalog.Default()
	s := State{Active: catalog.Placement, OpenID: 99, Open: true}
	v, ok := CurrentDetail(s, c)
	assert.False(t, ok)
	assert.Nil(t, v.Record)

	// An id valid only in another category does not leak across.
	onlyMentorship := &catalog.Catalog{
		Mentorships: []catalog.MentorshipRecord{{ID: 8, Status: status.Active}},
	}
	_, ok = CurrentDetail(State{Active: catalog.Placement, OpenID: 8, Open: true}, onlyMentorship)
	assert.False(t, ok)

	_, ok = CurrentDetail(State{Active: catalog.Webinar, OpenID: 1, Open: true}, nil)
	assert.False(t, ok)
}

func TestRenderDetail_FieldSets(t *testing.T) {
	c := catalog.Default()

	labels := func(v DetailView) []string {
		var out []string
		for _, f := range v.Fields {
			out = append(out, f.Label)
		}
		return out
	}

	w, _ := c.Find(catalog.Webinar, 1)
	assert.Equal(t, []string{"Status", "Date", "Speakers", "Conducted Sessions", "Postponed Sessions", "Topic"}, labels(RenderDetail(w)))

	m, _ := c.Find(catalog.Mentorship, 1)
	mv := RenderDetail(m)
	assert.Equal(t, "Mentorship Program", mv.Heading)
	assert.Equal(t, []string{"Mentor", "Mentee", "Status", "Duration", "Meetings", "Postponed", "Focus Area"}, labels(mv))
	duration, _ := mv.Field("Duration")
	assert.Equal(t, "6 months", duration)

	p, _ := c.Find(catalog.Placement, 2)
	pv := RenderDetail(p)
	assert.Equal(t, "Placement Details", pv.Heading)
	assert.Equal(t, []string{"Alumni", "Company", "Status", "Position", "Package", "Location", "Date"}, labels(pv))
	date, _ := pv.Field("Date")
	assert.Equal(t, "April 20, 2024", date)
	st, _ := pv.Field("Status")
	assert.Equal(t, "⏳ In Progress", st)
}

func TestRenderDetail_UnknownStatusDegrades(t *testing.T) {
	v := RenderDetail(catalog.PlacementRecord{ID: 1, Status: status.Code("WITHDRAWN")})
	assert.False(t, v.Badge.Known())
	st, ok := v.Field("Status")
	assert.True(t, ok)
	assert.Equal(t, "WITHDRAWN", st)

	_, ok = v.Field("Nope")
	assert.False(t, ok)
}

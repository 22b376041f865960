package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindOf struct{}

func (kindOf) Webinar(r WebinarRecord) string       { return "webinar:" + r.Title }
func (kindOf) Mentorship(r MentorshipRecord) string { return "mentorship:" + r.MentorName }
func (kindOf) Placement(r PlacementRecord) string   { return "placement:" + r.Company }

func TestVisit(t *testing.T) {
	assert.Equal(t, "webinar:AI", Visit[string](WebinarRecord{Title: "AI"}, kindOf{}))
	assert.Equal(t, "mentorship:Raj", Visit[string](&MentorshipRecord{MentorName: "Raj"}, kindOf{}))
	assert.Equal(t, "placement:TCS", Visit[string](PlacementRecord{Company: "TCS"}, kindOf{}))
	assert.Empty(t, Visit[string](nil, kindOf{}))
	assert.Empty(t, Visit[string]((*WebinarRecord)(nil), kindOf{}))
	assert.Empty(t, Visit[string]((*MentorshipRecord)(nil), kindOf{}))
	assert.Empty(t, Visit[string]((*PlacementRecord)(nil), kindOf{}))
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil((*PlacementRecord)(nil)))
	assert.False(t, IsNil(&PlacementRecord{}))
	assert.False(t, IsNil(WebinarRecord{}))
}

func TestRecordCategories(t *testing.T) {
	assert.Equal(t, Webinar, WebinarRecord{}.Category())
	assert.Equal(t, Mentorship, MentorshipRecord{}.Category())
	assert.Equal(t, Placement, PlacementRecord{}.Category())
}

func TestDateFormats(t *testing.T) {
	d := MustDate("2025-01-10")
	assert.Equal(t, "Jan 10", d.Short())
	assert.Equal(t, "Friday, January 10, 2025", d.Long())
	assert.Equal(t, "January 10, 2025", d.MonthDayYear())
	assert.Equal(t, "2025-01-10", d.String())

	var zero Date
	assert.True(t, zero.IsZero())
	assert.Equal(t, "-", zero.Short())
	assert.Empty(t, zero.String())
}

func TestDateScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-03-15"))
	assert.Equal(t, NewDate(2024, time.March, 15), d)

	require.NoError(t, d.Scan([]byte("2024-04-20")))
	assert.Equal(t, "2024-04-20", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 2, 10, 13, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-02-10", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, 12, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-15", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

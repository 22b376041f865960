package dashboard

import (
	"fmt"
	"strconv"

	"alumnidash/internal/catalog"
	"alumnidash/internal/status"
)

// DetailField is one labeled value in the overlay.
type DetailField struct {
	Label     string
	Value     string
	Highlight bool
	FullWidth bool
}

// DetailView is the full field set of one record. Record is the source
// record itself, so selection round-trips without loss.
type DetailView struct {
	ID       catalog.ID
	Category catalog.Category
	Heading  string
	Badge    status.Descriptor
	Fields   []DetailField
	Record   catalog.Record
}

// Field returns the value of the field with label, if present.
func (v DetailView) Field(label string) (string, bool) {
	for _, f := range v.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// CurrentDetail resolves the open record within the active category only.
// ok is false when nothing is open or the id is stale; the overlay must not
// render in that case.
func CurrentDetail(s State, c *catalog.Catalog) (DetailView, bool) {
	id, open := s.OpenRecord()
	if !open {
		return DetailView{}, false
	}
	r, found := c.Find(s.Active, id)
	if !found {
		return DetailView{}, false
	}
	return RenderDetail(r), true
}

// RenderDetail builds the overlay view for any record.
func RenderDetail(r catalog.Record) DetailView {
	v := catalog.Visit[DetailView](r, detailProjection{})
	v.Record = r
	return v
}

func statusValue(code status.Code) string {
	d := status.Describe(code)
	if !d.Known() {
		return string(code)
	}
	return d.Badge()
}

type detailProjection struct{}

func (detailProjection) Webinar(r catalog.WebinarRecord) DetailView {
	return DetailView{
		ID:       r.ID,
		Category: catalog.Webinar,
		Heading:  r.Title,
		Badge:    status.Describe(r.Status),
		Fields: []DetailField{
			{Label: "Status", Value: statusValue(r.Status)},
			{Label: "Date", Value: r.Date.Long()},
			{Label: "Speakers", Value: fmt.Sprintf("%d Experts", r.SpeakerCount)},
			{Label: "Conducted Sessions", Value: strconv.Itoa(r.ConductedCount), Highlight: true},
			{Label: "Postponed Sessions", Value: strconv.Itoa(r.PostponedCount)},
			{Label: "Topic", Value: r.Topic, FullWidth: true},
		},
	}
}

func (detailProjection) Mentorship(r catalog.MentorshipRecord) DetailView {
	return DetailView{
		ID:       r.ID,
		Category: catalog.Mentorship,
		Heading:  "Mentorship Program",
		Badge:    status.Describe(r.Status),
		Fields: []DetailField{
			{Label: "Mentor", Value: r.MentorName, Highlight: true},
			{Label: "Mentee", Value: r.MenteeName, Highlight: true},
			{Label: "Status", Value: statusValue(r.Status)},
			{Label: "Duration", Value: r.DurationLabel},
			{Label: "Meetings", Value: strconv.Itoa(r.MeetingCount), Highlight: true},
			{Label: "Postponed", Value: strconv.Itoa(r.PostponedCount)},
			{Label: "Focus Area", Value: r.Topic, FullWidth: true},
		},
	}
}

func (detailProjection) Placement(r catalog.PlacementRecord) DetailView {
	return DetailView{
		ID:       r.ID,
		Category: catalog.Placement,
		Heading:  "Placement Details",
		Badge:    status.Describe(r.Status),
		Fields: []DetailField{
			{Label: "Alumni", Value: r.AlumniName, Highlight: true},
			{Label: "Company", Value: r.Company, Highlight: true},
			{Label: "Status", Value: statusValue(r.Status)},
			{Label: "Position", Value: r.Position},
			{Label: "Package", Value: r.PackageLabel, Highlight: true},
			{Label: "Location", Value: r.Location},
			{Label: "Date", Value: r.Date.MonthDayYear()},
		},
	}
}

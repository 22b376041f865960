package dashboard

import (
	"fmt"

	"alumnidash/internal/catalog"
	"alumnidash/internal/status"
)

// SummaryField is one line of a preview card.
type SummaryField struct {
	Icon string
	Text string
}

// SummaryView is a preview card: a heading, a status badge and exactly three
// category-specific fields. ID resolves back to the live record.
type SummaryView struct {
	ID       catalog.ID
	Category catalog.Category
	Heading  string
	Badge    status.Descriptor
	Fields   [3]SummaryField
}

// Select returns the event that opens this card's record.
func (v SummaryView) Select() Event {
	return SelectRecord{ID: v.ID}
}

// RenderGrid projects records to cards in catalog order. Records that do not
// belong to category are skipped, since selecting them would never resolve
// in that category.
func RenderGrid(category catalog.Category, records []catalog.Record) []SummaryView {
	views := make([]SummaryView, 0, len(records))
	for _, r := range records {
		if catalog.IsNil(r) || r.Category() != category {
			continue
		}
		views = append(views, catalog.Visit[SummaryView](r, summaryProjection{}))
	}
	return views
}

// GridFor renders the whole collection of category.
func GridFor(category catalog.Category, c *catalog.Catalog) []SummaryView {
	return RenderGrid(category, c.Collection(category))
}

type summaryProjection struct{}

func (summaryProjection) Webinar(r catalog.WebinarRecord) SummaryView {
	return SummaryView{
		ID:       r.ID,
		Category: catalog.Webinar,
		Heading:  r.Title,
		Badge:    status.Describe(r.Status),
		Fields: [3]SummaryField{
			{Icon: "🎤", Text: fmt.Sprintf("%d Speakers", r.SpeakerCount)},
			{Icon: "✅", Text: fmt.Sprintf("%d Conducted", r.ConductedCount)},
			{Icon: "📅", Text: r.Date.Short()},
		},
	}
}

func (summaryProjection) Mentorship(r catalog.MentorshipRecord) SummaryView {
	return SummaryView{
		ID:       r.ID,
		Category: catalog.Mentorship,
		Heading:  r.Topic,
		Badge:    status.Describe(r.Status),
		Fields: [3]SummaryField{
			{Icon: "👨‍🏫", Text: r.MentorName},
			{Icon: "👨‍🎓", Text: r.MenteeName},
			{Icon: "✅", Text: fmt.Sprintf("%d Meetings", r.MeetingCount)},
		},
	}
}

func (summaryProjection) Placement(r catalog.PlacementRecord) SummaryView {
	return SummaryView{
		ID:       r.ID,
		Category: catalog.Placement,
		Heading:  r.AlumniName,
		Badge:    status.Describe(r.Status),
		Fields: [3]SummaryField{
			{Icon: "🏢", Text: r.Company},
			{Icon: "💼", Text: r.Position},
			{Icon: "💰", Text: r.PackageLabel},
		},
	}
}

package catalog

import "alumnidash/internal/status"

// ID identifies a record within its own category's collection.
type ID int

// Record is implemented only by WebinarRecord, MentorshipRecord and
// PlacementRecord.
type Record interface {
	RecordID() ID
	Category() Category
	StatusCode() status.Code
	sealed()
}

// WebinarRecord is one webinar request.
type WebinarRecord struct {
	ID             ID          `yaml:"id"`
	Title          string      `yaml:"title"`
	Status         status.Code `yaml:"status"`
	ConductedCount int         `yaml:"conducted"`
	PostponedCount int         `yaml:"postponed"`
	Topic          string      `yaml:"topic"`
	SpeakerCount   int         `yaml:"speakers"`
	Date           Date        `yaml:"date"`
}

func (r WebinarRecord) RecordID() ID            { return r.ID }
func (r WebinarRecord) Category() Category      { return Webinar }
func (r WebinarRecord) StatusCode() status.Code { return r.Status }
func (WebinarRecord) sealed()                   {}

// MentorshipRecord is one mentor/mentee pairing.
type MentorshipRecord struct {
	ID             ID          `yaml:"id"`
	MentorName     string      `yaml:"mentor"`
	MenteeName     string      `yaml:"mentee"`
	MeetingCount   int         `yaml:"meetings"`
	Status         status.Code `yaml:"status"`
	Topic          string      `yaml:"topic"`
	PostponedCount int         `yaml:"postponed"`
	DurationLabel  string      `yaml:"duration"`
}

func (r MentorshipRecord) RecordID() ID            { return r.ID }
func (r MentorshipRecord) Category() Category      { return Mentorship }
func (r MentorshipRecord) StatusCode() status.Code { return r.Status }
func (MentorshipRecord) sealed()                   {}

// PlacementRecord is one alumni placement outcome.
type PlacementRecord struct {
	ID           ID          `yaml:"id"`
	AlumniName   string      `yaml:"alumni"`
	Company      string      `yaml:"company"`
	Status       status.Code `yaml:"status"`
	PackageLabel string      `yaml:"package"`
	Position     string      `yaml:"position"`
	Date         Date        `yaml:"date"`
	Location     string      `yaml:"location"`
}

func (r PlacementRecord) RecordID() ID            { return r.ID }
func (r PlacementRecord) Category() Category      { return Placement }
func (r PlacementRecord) StatusCode() status.Code { return r.Status }
func (PlacementRecord) sealed()                   {}

// Visitor has one method per record variant. Every projection (summary
// card, detail overlay, aggregates) is a Visitor, so adding a variant is a
// compile error at each of them until handled.
type Visitor[T any] interface {
	Webinar(WebinarRecord) T
	Mentorship(MentorshipRecord) T
	Placement(PlacementRecord) T
}

// IsNil reports whether r is nil or a nil record pointer.
func IsNil(r Record) bool {
	switch rec := r.(type) {
	case nil:
		return true
	case *WebinarRecord:
		return rec == nil
	case *MentorshipRecord:
		return rec == nil
	case *PlacementRecord:
		return rec == nil
	}
	return false
}

// Visit dispatches r to the matching Visitor method. A nil record, typed
// or not, yields the zero value.
func Visit[T any](r Record, v Visitor[T]) T {
	switch rec := r.(type) {
	case WebinarRecord:
		return v.Webinar(rec)
	case *WebinarRecord:
		if rec == nil {
			break
		}
		return v.Webinar(*rec)
	case MentorshipRecord:
		return v.Mentorship(rec)
	case *MentorshipRecord:
		if rec == nil {
			break
		}
		return v.Mentorship(*rec)
	case PlacementRecord:
		return v.Placement(rec)
	case *PlacementRecord:
		if rec == nil {
			break
		}
		return v.Placement(*rec)
	}
	var zero T
	return zero
}

// Package catalog holds the three typed record collections the dashboard
// browses. The catalog is supplied whole (embedded fixtures, a YAML file or
// the SQLite store) and is read-only once loaded.
package catalog

import (
	"errors"
	"fmt"

	"alumnidash/internal/status"
)

// ErrRecordNotFound is returned by Lookup when no record in the category has
// the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Catalog is the full data set, one ordered collection per category.
type Catalog struct {
	Webinars    []WebinarRecord    `yaml:"webinars"`
	Mentorships []MentorshipRecord `yaml:"mentorships"`
	Placements  []PlacementRecord  `yaml:"placements"`
}

// Collection returns the records of one category in catalog order.
func (c *Catalog) Collection(cat Category) []Record {
	if c == nil {
		return nil
	}
	switch cat {
	case Webinar:
		return toRecords(c.Webinars)
	case Mentorship:
		return toRecords(c.Mentorships)
	case Placement:
		return toRecords(c.Placements)
	}
	return nil
}

func toRecords[R Record](in []R) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

// Len returns the size of one category's collection.
func (c *Catalog) Len(cat Category) int {
	if c == nil {
		return 0
	}
	switch cat {
	case Webinar:
		return len(c.Webinars)
	case Mentorship:
		return len(c.Mentorships)
	case Placement:
		return len(c.Placements)
	}
	return 0
}

// Find looks up id within cat only. An id that exists in another category
// is not found.
func (c *Catalog) Find(cat Category, id ID) (Record, bool) {
	if c == nil {
		return nil, false
	}
	switch cat {
	case Webinar:
		return findByID(c.Webinars, id)
	case Mentorship:
		return findByID(c.Mentorships, id)
	case Placement:
		return findByID(c.Placements, id)
	}
	return nil, false
}

func findByID[R Record](in []R, id ID) (Record, bool) {
	for _, r := range in {
		if r.RecordID() == id {
			return r, true
		}
	}
	return nil, false
}

// Lookup is Find with an error for CLI callers.
func (c *Catalog) Lookup(cat Category, id ID) (Record, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}
	r, ok := c.Find(cat, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s id=%d", ErrRecordNotFound, cat, id)
	}
	return r, nil
}

// Statuses returns every distinct status code used by any record, in first
// use order.
func (c *Catalog) Statuses() []status.Code {
	seen := make(map[status.Code]bool)
	var out []status.Code
	for _, cat := range Categories() {
		for _, r := range c.Collection(cat) {
			code := r.StatusCode()
			if !seen[code] {
				seen[code] = true
				out = append(out, code)
			}
		}
	}
	return out
}

// Validate checks the catalog on load: ids unique per category, every
// status in the taxonomy, counts non-negative. All problems are reported.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	var errs []error
	for _, cat := range Categories() {
		ids := make(map[ID]bool)
		for i, r := range c.Collection(cat) {
			where := fmt.Sprintf("%s[%d] id=%d", cat, i, r.RecordID())
			if ids[r.RecordID()] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", where))
			}
			ids[r.RecordID()] = true
			if !status.IsKnown(r.StatusCode()) {
				errs = append(errs, fmt.Errorf("%s: unknown status %q", where, r.StatusCode()))
			}
			for _, n := range Visit[[]int](r, countFields{}) {
				if n < 0 {
					errs = append(errs, fmt.Errorf("%s: negative count %d", where, n))
				}
			}
		}
	}
	return errors.Join(errs...)
}

type countFields struct{}

func (countFields) Webinar(r WebinarRecord) []int {
	return []int{r.ConductedCount, r.PostponedCount, r.SpeakerCount}
}

func (countFields) Mentorship(r MentorshipRecord) []int {
	return []int{r.MeetingCount, r.PostponedCount}
}

func (countFields) Placement(PlacementRecord) []int {
	return nil
}

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCategory is returned when a category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the three closed record kinds.
type Category int

const (
	Webinar Category = iota
	Mentorship
	Placement

	categoryCount
)

var titleCaser = cases.Title(language.English)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Webinar, Mentorship, Placement}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Webinar && c < categoryCount
}

// String returns the plural slug ("webinars", "mentorships", "placements").
func (c Category) String() string {
	switch c {
	case Webinar:
		return "webinars"
	case Mentorship:
		return "mentorships"
	case Placement:
		return "placements"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Title returns the tab label ("Webinars").
func (c Category) Title() string {
	if !c.Valid() {
		return ""
	}
	return titleCaser.String(c.String())
}

// Icon returns the tab icon.
func (c Category) Icon() string {
	switch c {
	case Webinar:
		return "🎓"
	case Mentorship:
		return "🤝"
	case Placement:
		return "💼"
	default:
		return ""
	}
}

// Next returns the following category, wrapping around.
func (c Category) Next() Category {
	if !c.Valid() {
		return Webinar
	}
	return (c + 1) % categoryCount
}

// Prev returns the preceding category, wrapping around.
func (c Category) Prev() Category {
	if !c.Valid() {
		return Webinar
	}
	return (c + categoryCount - 1) % categoryCount
}

// ParseCategory accepts the slug, singular or title form, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "webinars", "webinar":
		return Webinar, nil
	case "mentorships", "mentorship":
		return Mentorship, nil
	case "placements", "placement":
		return Placement, nil
	}
	return Webinar, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryVisitor has one method per category. Sites keyed by category
// (stats, portal copy) implement it so a new category fails to compile
// until every site handles it.
type CategoryVisitor[T any] interface {
	Webinars() T
	Mentorships() T
	Placements() T
}

// VisitCategory dispatches c to v. ok is false for an invalid category.
func VisitCategory[T any](c Category, v CategoryVisitor[T]) (result T, ok bool) {
	switch c {
	case Webinar:
		return v.Webinars(), true
	case Mentorship:
		return v.Mentorships(), true
	case Placement:
		return v.Placements(), true
	}
	return result, false
}

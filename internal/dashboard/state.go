// Package dashboard is the selection and presentation core of the alumni
// dashboard: a single reducer over (active category, open record), and pure
// projections from that state and the catalog to summary cards, the detail
// overlay, the stats panel and portal intents.
package dashboard

import (
	"fmt"

	"alumnidash/internal/catalog"
)

// State is the selection state. The zero value is the initial state: the
// first category with nothing open.
type State struct {
	Active catalog.Category
	OpenID catalog.ID
	Open   bool
}

// Initial returns the initial selection state.
func Initial() State {
	return State{Active: catalog.Categories()[0]}
}

// OpenRecord returns the open record id, if any.
func (s State) OpenRecord() (catalog.ID, bool) {
	return s.OpenID, s.Open
}

func (s State) String() string {
	if !s.Open {
		return fmt.Sprintf("(%s, none)", s.Active)
	}
	return fmt.Sprintf("(%s, %d)", s.Active, s.OpenID)
}

// IsOpen reports whether the overlay should be considered open. The overlay
// may still render nothing if the id does not resolve; see CurrentDetail.
func IsOpen(s State) bool {
	return s.Open
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// SelectCategory activates a tab.
type SelectCategory struct {
	Category catalog.Category
}

// NextCategory and PrevCategory cycle tabs from the keyboard.
type (
	NextCategory struct{}
	PrevCategory struct{}
)

// SelectRecord opens a card's record by id.
type SelectRecord struct {
	ID catalog.ID
}

// DismissSource names the affordance that closed the overlay.
type DismissSource int

const (
	DismissCloseIcon DismissSource = iota
	DismissCloseButton
	DismissScrim
	DismissEscape
)

func (d DismissSource) String() string {
	switch d {
	case DismissCloseIcon:
		return "close-icon"
	case DismissCloseButton:
		return "close-button"
	case DismissScrim:
		return "scrim"
	case DismissEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Dismiss closes the overlay.
type Dismiss struct {
	Source DismissSource
}

// ScrimClick is a click on the background behind the overlay.
type ScrimClick struct{}

// ContentClick is a click inside the overlay content. It never dismisses.
type ContentClick struct{}

func (SelectCategory) isEvent() {}
func (NextCategory) isEvent()   {}
func (PrevCategory) isEvent()   {}
func (SelectRecord) isEvent()   {}
func (Dismiss) isEvent()        {}
func (ScrimClick) isEvent()     {}
func (ContentClick) isEvent()   {}

// Reduce is the only transition function for State.
//
//	(A, any)  SelectCategory(A)      -> (A, unchanged)
//	(A, r)    SelectCategory(B != A) -> (B, none)
//	(A, _)    SelectRecord(r)        -> (A, r)
//	(A, _)    Dismiss / ScrimClick   -> (A, none)
//	(A, r)    ContentClick           -> (A, r)
//
// Invalid categories and unrecognized events leave the state unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case SelectCategory:
		return selectCategory(s, e.Category)
	case NextCategory:
		return selectCategory(s, s.Active.Next())
	case PrevCategory:
		return selectCategory(s, s.Active.Prev())
	case SelectRecord:
		s.OpenID = e.ID
		s.Open = true
		return s
	case Dismiss, ScrimClick:
		return closed(s)
	case ContentClick:
		return s
	}
	return s
}

func selectCategory(s State, c catalog.Category) State {
	if !c.Valid() || c == s.Active {
		return s
	}
	return closed(State{Active: c})
}

func closed(s State) State {
	s.Open = false
	s.OpenID = 0
	return s
}

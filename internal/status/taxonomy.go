// Package status defines the closed status taxonomy shared by every record
// category. Webinars, mentorships and placements each use a subset of the
// codes below; presentation (symbol, label, style class) lives only here.
package status

import "strings"

// Code is the status tag attached to a record.
type Code string

const (
	Approved   Code = "APPROVED"
	Hold       Code = "HOLD"
	Active     Code = "ACTIVE"
	Scheduled  Code = "SCHEDULED"
	OnHold     Code = "ON_HOLD"
	Offered    Code = "OFFERED"
	InProgress Code = "IN_PROGRESS"
	Rejected   Code = "REJECTED"
)

// Outcome groups codes for aggregate figures.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Descriptor is the presentation form of a Code.
type Descriptor struct {
	Code    Code
	Class   string
	Symbol  string
	Label   string
	Outcome Outcome
	known   bool
}

// Known reports whether the descriptor came from the taxonomy table.
// The zero Descriptor (and Unknown) is not known.
func (d Descriptor) Known() bool {
	return d.known
}

// Badge renders "symbol label", or "" for an unknown descriptor.
func (d Descriptor) Badge() string {
	if !d.known {
		return ""
	}
	return d.Symbol + " " + d.Label
}

// Unknown is returned by Describe for codes outside the taxonomy.
var Unknown = Descriptor{}

var table = []Descriptor{
	{Code: Approved, Class: "status-approved", Symbol: "✓", Label: "Approved", Outcome: OutcomeSuccess, known: true},
	{Code: Hold, Class: "status-hold", Symbol: "⏸", Label: "On Hold", Outcome: OutcomePending, known: true},
	{Code: Active, Class: "status-active", Symbol: "●", Label: "Active", Outcome: OutcomeSuccess, known: true},
	{Code: Scheduled, Class: "status-scheduled", Symbol: "📅", Label: "Scheduled", Outcome: OutcomePending, known: true},
	{Code: OnHold, Class: "status-onhold", Symbol: "⏸", Label: "On Hold", Outcome: OutcomePending, known: true},
	{Code: Offered, Class: "status-offered", Symbol: "🎉", Label: "Offered", Outcome: OutcomeSuccess, known: true},
	{Code: InProgress, Class: "status-progress", Symbol: "⏳", Label: "In Progress", Outcome: OutcomePending, known: true},
	{Code: Rejected, Class: "status-rejected", Symbol: "✕", Label: "Rejected", Outcome: OutcomeFailure, known: true},
}

var byCode = func() map[Code]Descriptor {
	m := make(map[Code]Descriptor, len(table))
	for _, d := range table {
		m[d.Code] = d
	}
	return m
}()

// Describe returns the descriptor for code. It never fails: codes missing
// from the table yield Unknown.
func Describe(code Code) Descriptor {
	if d, ok := byCode[code]; ok {
		return d
	}
	return Unknown
}

// IsKnown reports whether code is in the taxonomy.
func IsKnown(code Code) bool {
	_, ok := byCode[code]
	return ok
}

// Codes returns every known code in table order.
func Codes() []Code {
	out := make([]Code, len(table))
	for i, d := range table {
		out[i] = d.Code
	}
	return out
}

// Parse normalizes an externally supplied spelling ("in progress",
// "On-Hold") to a Code. The result is not guaranteed to be known.
func Parse(s string) Code {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return Code(s)
}

// UnmarshalText lets YAML and flag decoding accept the loose spellings.
func (c *Code) UnmarshalText(text []byte) error {
	*c = Parse(string(text))
	return nil
}

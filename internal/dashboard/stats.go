package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"alumnidash/internal/catalog"
	"alumnidash/internal/status"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// StatsMode selects where the stats panel figures come from.
type StatsMode int

const (
	// StatsDerived aggregates the live collection.
	StatsDerived StatsMode = iota
	// StatsStatic shows the fixed presentation figures shipped with the
	// original dashboard. They do not track the collection.
	StatsStatic
)

func (m StatsMode) String() string {
	if m == StatsStatic {
		return "static"
	}
	return "derived"
}

// ParseStatsMode parses "derived" or "static".
func ParseStatsMode(s string) (StatsMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "derived":
		return StatsDerived, nil
	case "static":
		return StatsStatic, nil
	}
	return StatsDerived, fmt.Errorf("invalid stats mode %q (valid: derived, static)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m StatsMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *StatsMode) UnmarshalText(text []byte) error {
	parsed, err := ParseStatsMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Stat is one figure in the access panel.
type Stat struct {
	Value string
	Label string
}

var printer = message.NewPrinter(language.English)

// StatsFor returns the ordered figures for category. An invalid category
// yields no figures; an empty collection yields zeros.
func StatsFor(category catalog.Category, c *catalog.Catalog, mode StatsMode) []Stat {
	var v catalog.CategoryVisitor[[]Stat] = derivedStats{c: c}
	if mode == StatsStatic {
		v = staticStats{}
	}
	stats, _ := catalog.VisitCategory(category, v)
	return stats
}

type staticStats struct{}

func (staticStats) Webinars() []Stat {
	return []Stat{{"6", "Total Webinars"}, {"4", "Approved"}, {"2", "On Hold"}}
}

func (staticStats) Mentorships() []Stat {
	return []Stat{{"5", "Active Programs"}, {"12", "Total Meetings"}, {"4", "On Track"}}
}

func (staticStats) Placements() []Stat {
	return []Stat{{"6", "Placements"}, {"3", "Offered"}, {"10.5", "Avg Package (LPA)"}}
}

// succeeded reports whether code is a terminal-success status. Unknown codes
// never count.
func succeeded(code status.Code) bool {
	d := status.Describe(code)
	return d.Known() && d.Outcome == status.OutcomeSuccess
}

type derivedStats struct {
	c *catalog.Catalog
}

func (d derivedStats) Webinars() []Stat {
	var total, approved, onHold int
	if d.c != nil {
		for _, r := range d.c.Webinars {
			total++
			if succeeded(r.Status) {
				approved++
			}
			switch r.Status {
			case status.Hold, status.OnHold:
				onHold++
			}
		}
	}
	return []Stat{
		{formatCount(total), "Total Webinars"},
		{formatCount(approved), "Approved"},
		{formatCount(onHold), "On Hold"},
	}
}

// Mentorships counts a program as on track when its status succeeded and it
// has never been postponed.
func (d derivedStats) Mentorships() []Stat {
	var active, meetings, onTrack int
	if d.c != nil {
		for _, r := range d.c.Mentorships {
			meetings += r.MeetingCount
			if succeeded(r.Status) {
				active++
				if r.PostponedCount == 0 {
					onTrack++
				}
			}
		}
	}
	return []Stat{
		{formatCount(active), "Active Programs"},
		{formatCount(meetings), "Total Meetings"},
		{formatCount(onTrack), "On Track"},
	}
}

// Placements averages only packages of the form "<number> LPA"; labels such
// as "Pending" or "-" are excluded. With nothing to average the value is "-".
func (d derivedStats) Placements() []Stat {
	var total, offered, priced int
	var sum float64
	if d.c != nil {
		for _, r := range d.c.Placements {
			total++
			if succeeded(r.Status) {
				offered++
			}
			if lpa, ok := ParsePackageLPA(r.PackageLabel); ok {
				sum += lpa
				priced++
			}
		}
	}
	avg := "-"
	if priced > 0 {
		avg = printer.Sprintf("%v", number.Decimal(sum/float64(priced), number.MaxFractionDigits(1)))
	}
	return []Stat{
		{formatCount(total), "Placements"},
		{formatCount(offered), "Offered"},
		{avg, "Avg Package (LPA)"},
	}
}

func formatCount(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// ParsePackageLPA extracts the numeric value of a package label such as
// "12 LPA" or "10.5 lpa".
func ParsePackageLPA(label string) (float64, bool) {
	fields := strings.Fields(label)
	if len(fields) != 2 || !strings.EqualFold(fields[1], "LPA") {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

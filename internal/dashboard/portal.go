package dashboard

import (
	"alumnidash/internal/catalog"

	"github.com/google/uuid"
)

// Portal is the management-portal access card for one category.
type Portal struct {
	Category    catalog.Category
	Icon        string
	Title       string
	Description string
	ButtonText  string
	Route       string
}

// Intent asks the host to navigate to a category's management portal. What
// the route means is up to the host.
type Intent struct {
	ID       string
	Category catalog.Category
	Route    string
}

// PortalFor returns the access card copy for category. ok is false for an
// invalid category.
func PortalFor(category catalog.Category) (Portal, bool) {
	p, ok := catalog.VisitCategory[Portal](category, portalCopy{})
	if ok {
		p.Category = category
		p.ButtonText = "Go to Dashboard →"
	}
	return p, ok
}

// NewIntent builds a navigation intent for category.
func NewIntent(category catalog.Category) (Intent, bool) {
	p, ok := PortalFor(category)
	if !ok {
		return Intent{}, false
	}
	return Intent{ID: uuid.NewString(), Category: category, Route: p.Route}, true
}

type portalCopy struct{}

func (portalCopy) Webinars() Portal {
	return Portal{
		Icon:        "🎓",
		Title:       "Webinar Dashboard",
		Description: "Manage webinar requests, speaker assignments, and topic approvals in the comprehensive management portal.",
		Route:       "/login",
	}
}

func (portalCopy) Mentorships() Portal {
	return Portal{
		Icon:        "🤝",
		Title:       "Mentorship Dashboard",
		Description: "Manage mentorship programs, track progress, and handle mentor-mentee assignments.",
		Route:       "/login1",
	}
}

func (portalCopy) Placements() Portal {
	return Portal{
		Icon:        "💼",
		Title:       "Placement Dashboard",
		Description: "View and manage placement data, company registrations, and alumni employment records.",
		Route:       "/placement-dashboard",
	}
}

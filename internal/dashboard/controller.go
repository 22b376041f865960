package dashboard

import (
	"alumnidash/internal/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller owns one selection State over a read-only catalog. Every
// mutation goes through Reduce. It is not safe for concurrent use; the UI
// drives it from a single event loop.
type Controller struct {
	state     State
	catalog   *catalog.Catalog
	statsMode StatsMode
	session   string
	logger    *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the transition logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStatsMode sets how stats panel figures are produced.
func WithStatsMode(m StatsMode) Option {
	return func(c *Controller) { c.statsMode = m }
}

// WithInitialCategory starts on a category other than the first.
func WithInitialCategory(cat catalog.Category) Option {
	return func(c *Controller) {
		c.state = Reduce(c.state, SelectCategory{Category: cat})
	}
}

// NewController creates a controller in the initial state. A nil catalog is
// treated as empty.
func NewController(c *catalog.Catalog, opts ...Option) *Controller {
	if c == nil {
		c = &catalog.Catalog{}
	}
	ctrl := &Controller{
		state:   Initial(),
		catalog: c,
		session: uuid.NewString(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	ctrl.logger = ctrl.logger.With(zap.String("session", ctrl.session))
	return ctrl
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Catalog returns the catalog being browsed.
func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }

// StatsMode returns the configured stats mode.
func (c *Controller) StatsMode() StatsMode { return c.statsMode }

// Session returns the id used to correlate this controller's log lines.
func (c *Controller) Session() string { return c.session }

// Dispatch applies ev and returns the new state.
func (c *Controller) Dispatch(ev Event) State {
	prev := c.state
	c.state = Reduce(prev, ev)
	if prev != c.state {
		c.logger.Debug("selection changed",
			zap.String("event", eventName(ev)),
			zap.Stringer("from", prev),
			zap.Stringer("to", c.state),
		)
	}
	return c.state
}

// SelectCategory activates cat. Reselecting the active category keeps the
// open record.
func (c *Controller) SelectCategory(cat catalog.Category) State {
	return c.Dispatch(SelectCategory{Category: cat})
}

// SelectRecord opens id in the active category. Ids that do not resolve in
// the active category are refused and the state is left unchanged.
func (c *Controller) SelectRecord(id catalog.ID) bool {
	if _, ok := c.catalog.Find(c.state.Active, id); !ok {
		c.logger.Warn("refused selection of unknown record",
			zap.Stringer("category", c.state.Active),
			zap.Int("id", int(id)),
		)
		return false
	}
	c.Dispatch(SelectRecord{ID: id})
	return true
}

// Dismiss closes the overlay. Closing an already closed overlay is a no-op.
func (c *Controller) Dismiss(source DismissSource) State {
	return c.Dispatch(Dismiss{Source: source})
}

// IsOpen reports whether a record is open.
func (c *Controller) IsOpen() bool { return IsOpen(c.state) }

// Grid renders the active category's cards.
func (c *Controller) Grid() []SummaryView {
	return GridFor(c.state.Active, c.catalog)
}

// Detail renders the open record, if it resolves.
func (c *Controller) Detail() (DetailView, bool) {
	v, ok := CurrentDetail(c.state, c.catalog)
	if !ok && c.state.Open {
		c.logger.Warn("open record no longer resolves",
			zap.Stringer("state", c.state),
		)
	}
	return v, ok
}

// Stats renders the active category's stats panel.
func (c *Controller) Stats() []Stat {
	return StatsFor(c.state.Active, c.catalog, c.statsMode)
}

// Portal returns the access card for the active category.
func (c *Controller) Portal() Portal {
	p, _ := PortalFor(c.state.Active)
	return p
}

// OpenPortal emits a navigation intent for the active category.
func (c *Controller) OpenPortal() Intent {
	intent, _ := NewIntent(c.state.Active)
	c.logger.Info("portal intent",
		zap.String("intent", intent.ID),
		zap.Stringer("category", intent.Category),
		zap.String("route", intent.Route),
	)
	return intent
}

func eventName(ev Event) string {
	switch e := ev.(type) {
	case SelectCategory:
		return "select-category:" + e.Category.String()
	case NextCategory:
		return "next-category"
	case PrevCategory:
		return "prev-category"
	case SelectRecord:
		return "select-record"
	case Dismiss:
		return "dismiss:" + e.Source.String()
	case ScrimClick:
		return "scrim-click"
	case ContentClick:
		return "content-click"
	}
	return "unknown"
}

package ui

import (
	"fmt"
	"strings"

	"alumnidash/internal/catalog"
	"alumnidash/internal/dashboard"
	"alumnidash/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures the dashboard model.
type Options struct {
	Theme        string // "auto", "light" or "dark"
	CardWidth    int    // 0 = default
	ShowHelp     bool
	ExitOnPortal bool
}

// Model is the bubbletea model for the dashboard. Selection state lives in
// the controller; the model only adds view state (grid cursor, overlay
// scroll position, terminal size).
type Model struct {
	ctrl    *dashboard.Controller
	styles  Styles
	keys    KeyMap
	help    help.Model
	overlay viewport.Model
	cards   *RenderCache
	logger  *zap.Logger

	width     int
	height    int
	cardWidth int
	cursor    int

	showHelp     bool
	exitOnPortal bool

	// overlay content currently loaded into the viewport
	overlayLoaded bool
	overlayCat    catalog.Category
	overlayID     catalog.ID

	intent *dashboard.Intent
}

// New creates the dashboard model over ctrl.
func New(ctrl *dashboard.Controller, opts Options) Model {
	m := Model{
		ctrl:         ctrl,
		styles:       NewStyles(ThemeFor(opts.Theme)),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		overlay:      viewport.New(0, 0),
		cards:        NewRenderCache(64),
		logger:       logging.Get(logging.CategoryRender),
		cardWidth:    opts.CardWidth,
		showHelp:     opts.ShowHelp,
		exitOnPortal: opts.ExitOnPortal,
	}
	m.syncOverlay(false)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the selection controller behind the model.
func (m Model) Controller() *dashboard.Controller {
	return m.ctrl
}

// Cursor returns the grid cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// Intent returns the last portal intent emitted, if any.
func (m Model) Intent() (dashboard.Intent, bool) {
	if m.intent == nil {
		return dashboard.Intent{}, false
	}
	return *m.intent, true
}

func (m Model) layout() LayoutConfig {
	return NewLayoutConfig(m.width, m.height, m.cardWidth)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("resize", zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		m.syncOverlay(true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	// Global keys work with or without the overlay
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.NextTab):
		m.dispatch(dashboard.NextCategory{})
		return m, nil
	case key.Matches(msg, k.PrevTab):
		m.dispatch(dashboard.PrevCategory{})
		return m, nil
	case key.Matches(msg, k.Webinars):
		m.dispatch(dashboard.SelectCategory{Category: catalog.Webinar})
		return m, nil
	case key.Matches(msg, k.Mentorships):
		m.dispatch(dashboard.SelectCategory{Category: catalog.Mentorship})
		return m, nil
	case key.Matches(msg, k.Placements):
		m.dispatch(dashboard.SelectCategory{Category: catalog.Placement})
		return m, nil
	}

	if m.ctrl.IsOpen() {
		switch {
		case key.Matches(msg, k.Close):
			m.dispatch(dashboard.Dismiss{Source: dashboard.DismissEscape})
		case key.Matches(msg, k.CloseIcon):
			m.dispatch(dashboard.Dismiss{Source: dashboard.DismissCloseIcon})
		case key.Matches(msg, k.CloseButton):
			m.dispatch(dashboard.Dismiss{Source: dashboard.DismissCloseButton})
		default:
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	cols := m.layout().GridColumns()
	switch {
	case key.Matches(msg, k.Left):
		m.moveCursor(-1)
	case key.Matches(msg, k.Right):
		m.moveCursor(1)
	case key.Matches(msg, k.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, k.Down):
		m.moveCursor(cols)
	case key.Matches(msg, k.Open):
		m.openAt(m.cursor)
	case key.Matches(msg, k.Portal):
		return m.openPortal()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		if m.ctrl.IsOpen() && tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	f := m.frame()
	if m.ctrl.IsOpen() {
		switch {
		case f.closeIcon.Contains(msg.X, msg.Y):
			m.dispatch(dashboard.Dismiss{Source: dashboard.DismissCloseIcon})
		case f.closeButton.Contains(msg.X, msg.Y):
			m.dispatch(dashboard.Dismiss{Source: dashboard.DismissCloseButton})
		case f.overlay.Contains(msg.X, msg.Y):
			m.dispatch(dashboard.ContentClick{})
		default:
			m.dispatch(dashboard.ScrimClick{})
		}
		return m, nil
	}

	for i, z := range f.tabs {
		if z.Contains(msg.X, msg.Y) {
			m.dispatch(dashboard.SelectCategory{Category: catalog.Categories()[i]})
			return m, nil
		}
	}
	for i, z := range f.cards {
		if z.Contains(msg.X, msg.Y) {
			m.cursor = i
			m.openAt(i)
			return m, nil
		}
	}
	if f.portalButton.Contains(msg.X, msg.Y) {
		return m.openPortal()
	}
	return m, nil
}

// dispatch feeds ev to the controller and resets view state the new
// selection invalidates.
func (m *Model) dispatch(ev dashboard.Event) {
	before := m.ctrl.State().Active
	after := m.ctrl.Dispatch(ev)
	if after.Active != before {
		m.cursor = 0
	}
	m.syncOverlay(false)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.ctrl.Grid())
	if n == 0 {
		m.cursor = 0
		return
	}
	c := m.cursor + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursor = c
}

func (m *Model) openAt(i int) {
	grid := m.ctrl.Grid()
	if i < 0 || i >= len(grid) {
		return
	}
	if m.ctrl.SelectRecord(grid[i].ID) {
		m.syncOverlay(false)
	}
}

func (m Model) openPortal() (tea.Model, tea.Cmd) {
	intent := m.ctrl.OpenPortal()
	logging.Portal("portal intent emitted",
		zap.String("intent", intent.ID),
		zap.Stringer("category", intent.Category),
		zap.String("route", intent.Route),
		zap.String("surface", "tui"),
	)
	m.intent = &intent
	if m.exitOnPortal {
		return m, tea.Quit
	}
	return m, nil
}

// syncOverlay loads the open record's fields into the overlay viewport when
// the open record changed (or always, with force).
func (m *Model) syncOverlay(force bool) {
	detail, ok := m.ctrl.Detail()
	if !ok {
		m.overlayLoaded = false
		return
	}
	if m.overlayLoaded && !force && m.overlayCat == detail.Category && m.overlayID == detail.ID {
		return
	}

	l := m.layout()
	inner := l.OverlayWidth() - OverlayBorderPad*2
	body := m.renderFields(detail, inner)
	m.overlay.Width = inner
	m.overlay.Height = l.OverlayBodyHeight(lipgloss.Height(body))
	m.overlay.SetContent(body)
	m.overlay.GotoTop()

	m.overlayLoaded = true
	m.overlayCat = detail.Category
	m.overlayID = detail.ID
	m.logger.Debug("overlay loaded",
		zap.Stringer("category", detail.Category),
		zap.Int("id", int(detail.ID)),
	)
}

// View renders the dashboard.
func (m Model) View() string {
	return m.frame().view
}

// frame is one rendered screen plus the hit areas mouse clicks resolve
// against.
type frame struct {
	view         string
	tabs         []Zone
	cards        []Zone
	portalButton Zone
	overlay      Zone
	closeIcon    Zone
	closeButton  Zone
}

func (m Model) frame() frame {
	l := m.layout()
	active := m.ctrl.State().Active

	var f frame
	var blocks []string
	y := 0
	add := func(block string) int {
		top := y
		blocks = append(blocks, block)
		y += lipgloss.Height(block)
		return top
	}

	add(m.styles.Header.Render("🎓 Alumni Association Dashboard"))
	add(m.styles.Subtitle.Render("Empowering Connections, Inspiring Success"))
	add("")

	tabBar, tabZones := m.renderTabs(active)
	top := add(tabBar)
	for _, z := range tabZones {
		z.X += PageMarginH
		z.Y += top
		f.tabs = append(f.tabs, z)
	}
	add("")

	add(m.styles.Section.Render("Management Portal"))
	portal, button := m.renderPortal(l)
	top = add(portal)
	button.X += PageMarginH
	button.Y += top
	f.portalButton = button
	add("")

	add(m.styles.Section.Render("Recent " + active.Title()))
	add(m.styles.Muted.Render("Click on any item to view detailed information"))
	grid, cardZones := m.renderGrid(l)
	top = add(grid)
	for _, z := range cardZones {
		z.X += PageMarginH
		z.Y += top
		f.cards = append(f.cards, z)
	}

	if footer := m.renderFooter(); footer != "" {
		add("")
		add(footer)
	}

	page := indent(strings.Join(blocks, "\n"), PageMarginH)
	if detail, ok := m.ctrl.Detail(); ok && m.overlayLoaded {
		f.view = m.renderOverlay(l, page, detail, &f)
	} else {
		f.view = page
	}
	return f
}

func (m Model) renderTabs(active catalog.Category) (string, []Zone) {
	var parts []string
	var zones []Zone
	x := 0
	for _, cat := range catalog.Categories() {
		style := m.styles.Tab
		if cat == active {
			style = m.styles.TabActive
		}
		tab := style.Render(cat.Icon() + " " + cat.Title())
		w := lipgloss.Width(tab)
		zones = append(zones, Zone{X: x, Y: 0, W: w, H: 1})
		parts = append(parts, tab)
		x += w + 1
	}
	return strings.Join(parts, " "), zones
}

// renderPortal renders the access card for the active category and returns
// the button's zone relative to the card's top left corner.
func (m Model) renderPortal(l LayoutConfig) (string, Zone) {
	p := m.ctrl.Portal()
	// border (2) + horizontal padding (4)
	inner := l.ContentWidth() - 6
	if inner < 10 {
		inner = 10
	}

	title := m.styles.Title.Render(p.Icon + " " + p.Title)
	desc := m.styles.Body.Width(inner).Render(p.Description)

	var stats []string
	for _, s := range m.ctrl.Stats() {
		stats = append(stats, lipgloss.NewStyle().PaddingRight(4).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				m.styles.StatValue.Render(s.Value),
				m.styles.StatLabel.Render(s.Label),
			),
		))
	}
	statsRow := lipgloss.JoinHorizontal(lipgloss.Top, stats...)

	button := m.styles.Button.Render(" " + p.ButtonText + " ")
	above := lipgloss.JoinVertical(lipgloss.Left, title, desc, "", statsRow, "")
	card := m.styles.Portal.Width(inner + 4).Render(lipgloss.JoinVertical(lipgloss.Left, above, button))

	zone := Zone{
		X: 1 + 2, // border + padding
		Y: 1 + lipgloss.Height(above),
		W: lipgloss.Width(button),
		H: 1,
	}
	return card, zone
}

// renderGrid lays cards out in rows and returns each card's zone relative
// to the grid's top left corner, in grid order.
func (m Model) renderGrid(l LayoutConfig) (string, []Zone) {
	views := m.ctrl.Grid()
	if len(views) == 0 {
		return m.styles.Muted.Render("No records."), nil
	}

	cols := l.GridColumns()
	var rows []string
	var zones []Zone
	y := 0
	for start := 0; start < len(views); start += cols {
		end := start + cols
		if end > len(views) {
			end = len(views)
		}
		var row []string
		x := 0
		rowHeight := 0
		for i := start; i < end; i++ {
			card := m.renderCard(views[i], l.CardWidth, i == m.cursor)
			w, h := lipgloss.Width(card), lipgloss.Height(card)
			zones = append(zones, Zone{X: x, Y: y, W: w, H: h})
			if h > rowHeight {
				rowHeight = h
			}
			if i > start {
				row = append(row, strings.Repeat(" ", CardGap))
			}
			row = append(row, card)
			x += w + CardGap
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		y += rowHeight
	}
	return strings.Join(rows, "\n"), zones
}

func (m Model) renderCard(v dashboard.SummaryView, width int, selected bool) string {
	key := ComputeKey(int(v.Category), int(v.ID), v.Heading, width, selected, m.styles.Theme.Name)
	return m.cards.GetOrCompute(key, func() string {
		style := m.styles.Card
		if selected {
			style = m.styles.CardSelected
		}
		// Width excludes the border but includes padding
		inner := width - 4
		if inner < 1 {
			inner = 1
		}
		line := lipgloss.NewStyle().MaxWidth(inner)

		lines := []string{
			line.Render(m.styles.CardHeading.Render(v.Heading)),
			line.Render(m.styles.Badge(v.Badge)),
		}
		for _, f := range v.Fields {
			lines = append(lines, line.Render(m.styles.Body.Render(f.Icon+" "+f.Text)))
		}
		lines = append(lines, line.Render(m.styles.CardFooter.Render("View Details →")))

		return style.Width(width - 2).Height(CardBodyLines).Render(strings.Join(lines, "\n"))
	})
}

func (m Model) renderFooter() string {
	var parts []string
	if intent, ok := m.Intent(); ok {
		parts = append(parts, m.styles.Info.Render(
			fmt.Sprintf("→ portal %s for %s", intent.Route, intent.Category.Title()),
		))
	}
	if m.showHelp {
		if m.ctrl.IsOpen() {
			parts = append(parts, m.help.View(overlayKeys{m.keys}))
		} else {
			parts = append(parts, m.help.View(gridKeys{m.keys}))
		}
	}
	return strings.Join(parts, "\n")
}

func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"alumnidash/cmd/alumni/ui"
	"alumnidash/internal/catalog"
	"alumnidash/internal/dashboard"
	"alumnidash/internal/logging"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// gridCmd prints a category's preview cards
var gridCmd = &cobra.Command{
	Use:   "grid [category]",
	Short: "List the preview cards of a category",
	Long: `Prints the preview grid of one category as a table: the card heading,
the status badge and the three summary fields.

Example:
  alumni grid placements`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

// showCmd renders one record's detail view
var showCmd = &cobra.Command{
	Use:   "show [category] [id]",
	Short: "Show the full detail of one record",
	Long: `Renders the detail overlay of one record as markdown.

Example:
  alumni show webinars 3`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

// statsCmd prints the stats panel
var statsCmd = &cobra.Command{
	Use:   "stats [category]",
	Short: "Show the stats panel of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

// portalCmd emits a management portal intent
var portalCmd = &cobra.Command{
	Use:   "portal [category]",
	Short: "Emit the management portal intent of a category",
	Long: `Prints the category, route and intent id of the category's management
portal, tab separated, for the host to route.`,
	Args: cobra.ExactArgs(1),
	RunE: runPortal,
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// controllerFor loads the catalog and selects the named category.
func controllerFor(cmd *cobra.Command, name string) (*dashboard.Controller, error) {
	cat, err := catalog.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	c, err := loadCatalog(commandContext(cmd), cfg)
	if err != nil {
		return nil, err
	}
	ctrl := dashboard.NewController(c,
		dashboard.WithLogger(logger),
		dashboard.WithStatsMode(cfg.GetStatsMode()),
	)
	ctrl.SelectCategory(cat)
	return ctrl, nil
}

func outputStyles() ui.Styles {
	return ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
}

func runGrid(cmd *cobra.Command, args []string) error {
	ctrl, err := controllerFor(cmd, args[0])
	if err != nil {
		return err
	}
	active := ctrl.State().Active

	table := ui.NewSimpleTable(active.Icon()+" Recent "+active.Title(), "ID", "Heading", "Status", "", "", "")
	for _, v := range ctrl.Grid() {
		row := []string{strconv.Itoa(int(v.ID)), v.Heading, v.Badge.Badge()}
		for _, f := range v.Fields {
			row = append(row, f.Icon+" "+f.Text)
		}
		table.AddRow(row...)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(outputStyles()))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctrl, err := controllerFor(cmd, args[0])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", args[1], err)
	}
	if _, err := ctrl.Catalog().Lookup(ctrl.State().Active, catalog.ID(id)); err != nil {
		return err
	}
	ctrl.SelectRecord(catalog.ID(id))
	detail, _ := ctrl.Detail()

	out := cmd.OutOrStdout()
	renderer, err := newRenderer(cfg.UI.Theme, out)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(detailMarkdown(detail))
	if err != nil {
		return fmt.Errorf("failed to render detail: %w", err)
	}
	fmt.Fprint(out, rendered)
	return nil
}

// newRenderer picks the markdown style for w. Output that is not a terminal
// gets plain text whatever the theme.
func newRenderer(theme string, w io.Writer) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	switch {
	case !isTerminal(w):
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	case theme == styles.LightStyle || theme == styles.DarkStyle:
		style = glamour.WithStandardStyle(theme)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// detailMarkdown renders a detail view as a markdown document.
func detailMarkdown(v dashboard.DetailView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", v.Heading)
	fmt.Fprintf(&sb, "%s %s", v.Category.Icon(), v.Category.Title())
	if v.Badge.Known() {
		fmt.Fprintf(&sb, " · **%s**", v.Badge.Badge())
	}
	sb.WriteString("\n\n| Field | Value |\n|---|---|\n")
	for _, f := range v.Fields {
		value := strings.ReplaceAll(f.Value, "|", `\|`)
		if f.Highlight {
			value = "**" + value + "**"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", f.Label, value)
	}
	return sb.String()
}

func runStats(cmd *cobra.Command, args []string) error {
	ctrl, err := controllerFor(cmd, args[0])
	if err != nil {
		return err
	}
	p := ctrl.Portal()
	table := ui.NewSimpleTable(p.Icon+" "+p.Title+" ("+ctrl.StatsMode().String()+")", "Figure", "Value")
	for _, s := range ctrl.Stats() {
		table.AddRow(s.Label, s.Value)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(outputStyles()))
	return nil
}

func runPortal(cmd *cobra.Command, args []string) error {
	ctrl, err := controllerFor(cmd, args[0])
	if err != nil {
		return err
	}
	intent := ctrl.OpenPortal()
	logging.Portal("portal intent emitted",
		zap.String("intent", intent.ID),
		zap.Stringer("category", intent.Category),
		zap.String("route", intent.Route),
		zap.String("surface", "cli"),
	)
	logger.Debug("portal intent emitted", zap.String("route", intent.Route))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", intent.Category, intent.Route, intent.ID)
	return nil
}

package main

import (
	"fmt"

	"alumnidash/cmd/alumni/ui"
	"alumnidash/internal/config"
	"alumnidash/internal/dashboard"
	"alumnidash/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newController builds a controller over the configured catalog.
func newController(cmd *cobra.Command, c *config.Config) (*dashboard.Controller, error) {
	cat, err := loadCatalog(commandContext(cmd), c)
	if err != nil {
		return nil, err
	}
	return dashboard.NewController(cat,
		dashboard.WithLogger(logging.Get(logging.CategorySelection)),
		dashboard.WithStatsMode(c.GetStatsMode()),
		dashboard.WithInitialCategory(c.GetDefaultCategory()),
	), nil
}

// dashboardOptions maps UI config onto the model options.
func dashboardOptions(c *config.Config) ui.Options {
	return ui.Options{
		Theme:        c.UI.Theme,
		CardWidth:    c.UI.CardWidth,
		ShowHelp:     c.UI.ShowHelp,
		ExitOnPortal: c.UI.ExitOnPortal,
	}
}

// runDashboard launches the interactive dashboard
func runDashboard(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(commandContext(cmd))}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logging.Boot("dashboard starting",
		zap.String("session", ctrl.Session()),
		zap.Stringer("stats_mode", ctrl.StatsMode()),
	)

	final, err := tea.NewProgram(ui.New(ctrl, dashboardOptions(cfg)), opts...).Run()
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	// Routing is the host's job: report the intent on the way out
	if m, ok := final.(ui.Model); ok {
		if intent, ok := m.Intent(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", intent.Category, intent.Route, intent.ID)
		}
	}
	return nil
}

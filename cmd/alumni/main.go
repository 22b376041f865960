package main

import (
	"fmt"
	"os"
	"path/filepath"

	"alumnidash/internal/config"
	"alumnidash/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	catalogSrc string
	driver     string
	theme      string
	statsMode  string

	// Dashboard flags
	exitOnPortal bool
	noMouse      bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "alumni",
	Short: "alumni - Alumni Association Dashboard",
	Long: `alumni browses the association's webinars, mentorships and placements.

Run without arguments to open the interactive dashboard. Records come from
the built-in preview data, a YAML file or a SQLite database (--catalog).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		workspace = ws

		path := configPath
		if path == "" {
			path = config.DefaultPath(ws)
		}
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := logging.Initialize(ws, cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Boot("alumni starting",
			zap.String("command", cmd.CommandPath()),
			zap.String("config", path),
		)

		logger, err = logging.NewCLI(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runDashboard,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.alumni/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogSrc, "catalog", "", "Catalog source: .yaml/.yml file or SQLite database (default: built-in data)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "SQLite driver: sqlite (pure Go) or sqlite3 (cgo)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Color theme: auto, light or dark")
	rootCmd.PersistentFlags().StringVar(&statsMode, "stats", "", "Stats panel figures: derived or static")

	// Dashboard flags
	rootCmd.Flags().BoolVar(&exitOnPortal, "exit-on-portal", false, "Quit after opening a management portal")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")

	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(portalCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command. PersistentPostRun is skipped when a command
// fails, so the failure is logged and the log files closed here.
func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.BootError("command failed", err)
		logging.CloseAll()
	}
	return err
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return filepath.Abs(workspace)
	}
	return os.Getwd()
}

// applyFlagOverrides layers explicitly set flags over file and env config.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		c.Catalog.Source = catalogSrc
	}
	if flags.Changed("driver") {
		c.Catalog.Driver = driver
	}
	if flags.Changed("theme") {
		c.UI.Theme = theme
	}
	if flags.Changed("stats") {
		c.Stats.Mode = statsMode
	}
	if flags.Changed("exit-on-portal") {
		c.UI.ExitOnPortal = exitOnPortal
	}
	if flags.Changed("no-mouse") {
		c.UI.Mouse = !noMouse
	}
	if verbose {
		c.Logging.Level = "debug"
	}
}

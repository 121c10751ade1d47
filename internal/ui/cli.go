package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/config"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/db"
	"github.com/javiermolinar/rotina/internal/logger"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/planner"
	"github.com/javiermolinar/rotina/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrConflicts is returned after a rejected day's conflicts were printed.
var ErrConflicts = errors.New("schedule has conflicts")

// App holds the CLI application state.
type App struct {
	repo    plan.Repository
	planner *planner.Planner
	config  *config.Config
	root    *cobra.Command
	debug   bool
	now     func() time.Time
	ownRepo bool
}

// NewApp creates a new CLI application. A nil repo is opened lazily from the
// configured database path.
func NewApp(repo plan.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "rotina",
		Short: "A daily routine planner",
		Long: `Rotina turns a description of your day (sleep, work, studies, meals,
exercise, hydration) into an ordered timeline, checks it for time conflicts,
including against last night's sleep, and shows your free time.

Run without arguments to open today's timeline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Init(logger.Config{
				Debug: a.debug || a.config.Log.Debug,
				Dir:   a.config.Log.Dir,
			})
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.planner, a.config, a.today())
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (mirrors the log file to stderr)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.templateCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.rebuildCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.freeCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.drinkCmd())
	a.root.AddCommand(a.overrideCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rotina %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.ownRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo == nil {
		path := a.config.Storage.DBPath
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		repo, err := db.New(path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		a.repo = repo
		a.ownRepo = true
	}
	if a.planner == nil {
		a.planner = planner.New(a.repo, a.config)
	}
	return nil
}

func (a *App) today() time.Time {
	return dateutil.TruncateToDay(a.now())
}

// resolveDate parses a --date flag value relative to today.
func (a *App) resolveDate(s string) (time.Time, error) {
	return dateutil.ParseRelativeDate(s, a.now())
}

// addDateFlag registers the shared --date flag.
func addDateFlag(cmd *cobra.Command, date *string) {
	cmd.Flags().StringVarP(date, "date", "d", "", "Day to use: YYYY-MM-DD, today, yesterday, tomorrow or a weekday (default: today)")
}

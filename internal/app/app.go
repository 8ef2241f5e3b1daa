package app

import (
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"uvctl/internal/catalog"
	"uvctl/internal/config"
	"uvctl/internal/history"
	"uvctl/internal/reconcile"
	"uvctl/internal/runner"
	"uvctl/internal/system"
	"uvctl/internal/ui"
)

// Core bundles the wired executor, catalog, reconciler and history store
// shared by the TUI, the CLI and the JSON API.
type Core struct {
	Config     config.Config
	Catalog    *catalog.Catalog
	Reconciler *reconcile.Reconciler
	History    *history.Store
}

// NewCore wires the core from cfg. A history file that cannot be read is
// logged and replaced by an empty store.
func NewCore(cfg config.Config, logger *clog.Logger) *Core {
	if logger == nil {
		logger = system.Logger
	}
	exec := runner.New(runner.WithLogger(logger))
	cat := catalog.FromConfig(cfg, runtime.GOOS)
	rec := reconcile.New(exec, cat, reconcile.WithLogger(logger))

	var hist *history.Store
	if p, err := config.HistoryFile(); err == nil {
		h, herr := history.Open(p, cfg.History.Size)
		if herr != nil {
			logger.Warn("history unreadable; starting empty", "path", p, "err", herr)
		}
		hist = h
	}
	return &Core{Config: cfg, Catalog: cat, Reconciler: rec, History: hist}
}

// Start runs the TUI program and returns any error. Logs go to a file
// while the dashboard owns the terminal.
func Start(cfg config.Config, overrides func(config.Config) config.Config) error {
	logsDir, _ := config.LogsDir()
	closer, err := system.SetupLogger(cfg.Log.Level, cfg.Log.File, logsDir)
	if err != nil {
		return err
	}
	defer closer.Close()

	core := NewCore(cfg, system.Logger)
	system.Logger.Info("starting dashboard", "tool", core.Catalog.Tool(), "config", cfg.Path())

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	m := ui.New(ui.Deps{
		Reconciler: core.Reconciler,
		History:    core.History,
		Config:     cfg,
		Platform:   system.Current(),
		Logger:     system.Logger,
		Watch:      true,
		Overrides:  overrides,
	})
	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return err
	}
	return nil
}

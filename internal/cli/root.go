package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uvctl/internal/app"
	"uvctl/internal/config"
	"uvctl/internal/system"
)

// errReported marks a failure whose details were already printed.
var errReported = errors.New("operation failed")

var (
	flagConfig   string
	flagTool     string
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "uvctl",
	Short: "uvctl – dashboard for uv and Python versions",
	Long:  "uvctl provides a TUI and subcommands to install uv and manage the Python versions it provides.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Start(cfg, applyFlags)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default <config dir>/uvctl/config.yaml)")
	pf.StringVar(&flagTool, "tool", "", "path or name of the uv executable")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFile, "log-file", "", "write logs to this file")
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	return applyFlags(cfg), nil
}

// applyFlags overlays the persistent flags onto cfg. The TUI reapplies it
// after every config reload.
func applyFlags(cfg config.Config) config.Config {
	if t := strings.TrimSpace(flagTool); t != "" {
		cfg.Tool = t
	}
	if l := strings.TrimSpace(flagLogLevel); l != "" {
		cfg.Log.Level = l
	}
	if f := strings.TrimSpace(flagLogFile); f != "" {
		cfg.Log.File = f
	}
	return cfg
}

// setup loads config, points the logger at stderr (or the configured file)
// and wires the core for one-shot commands.
func setup() (*app.Core, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, func() {}, err
	}
	closer, err := system.SetupLogger(cfg.Log.Level, cfg.Log.File, "")
	if err != nil {
		return nil, func() {}, err
	}
	return app.NewCore(cfg, system.Logger), func() { _ = closer.Close() }, nil
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

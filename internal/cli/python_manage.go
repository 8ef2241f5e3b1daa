package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"uvctl/internal/app"
	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
	"uvctl/internal/system"
)

var pyUninstallYes bool

func init() {
	pythonCmd.AddCommand(pyInstallCmd, pyUninstallCmd, pyFindCmd, pyPinCmd)
	pyUninstallCmd.Flags().BoolVarP(&pyUninstallYes, "yes", "y", false, "skip the confirmation prompt")
}

var pyInstallCmd = &cobra.Command{
	Use:   "install <version>",
	Short: "Install a Python version (uv python install)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionOp(cmd, catalog.InstallVersion, args[0])
	},
}

var pyUninstallCmd = &cobra.Command{
	Use:   "uninstall <version>",
	Short: "Uninstall a Python version (uv python uninstall)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := strings.TrimSpace(args[0])
		if !pyUninstallYes && isatty.IsTerminal(os.Stdin.Fd()) {
			ok := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Uninstall Python %s?", v)).
				Affirmative("Uninstall").
				Negative("Cancel").
				Value(&ok).
				Run()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}
		return versionOp(cmd, catalog.UninstallVersion, v)
	},
}

var pyFindCmd = &cobra.Command{
	Use:   "find [version]",
	Short: "Show which interpreter uv resolves for a request",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := ""
		if len(args) == 1 {
			v = args[0]
		}
		return versionOp(cmd, catalog.FindVersion, v)
	},
}

var pyPinCmd = &cobra.Command{
	Use:   "pin <version>",
	Short: "Pin the project Python version (.python-version)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionOp(cmd, catalog.PinVersion, args[0])
	},
}

// versionOp runs a version operation and reports it. Successful requests
// are remembered for the dashboard's suggestions.
func versionOp(cmd *cobra.Command, kind catalog.Kind, version string) error {
	core, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	out, err := runOp(cmd, core, kind, version)
	if errors.Is(err, catalog.ErrVersionRequired) {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if errors.Is(err, errReported) {
		if kind == catalog.UninstallVersion {
			suggestInstalled(cmd, core, out.Operation.Version)
		}
		return err
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Snapshot.Detail)
	if out.Snapshot.RefreshErr != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+out.Snapshot.RefreshErr)
	}
	if v := out.Operation.Version; v != "" {
		var herr error
		if kind == catalog.UninstallVersion {
			herr = core.History.Remove(v)
		} else {
			herr = core.History.Add(v)
		}
		if herr != nil {
			system.Logger.Warn("history not saved", "err", herr)
		}
	}
	return nil
}

// suggestInstalled prints a "did you mean" hint with the closest installed
// version after a failed uninstall.
func suggestInstalled(cmd *cobra.Command, core *app.Core, version string) {
	out, err := core.Reconciler.Do(cmdContext(cmd), catalog.NewOperation(catalog.ListInstalled, ""))
	if err != nil || !out.Result.Success {
		return
	}
	if best := closestVersion(version, out.Snapshot.Versions); best != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Did you mean %q?\n", best)
	}
}

// closestVersion returns the installed version nearest to v by edit
// distance on the short Python version. It returns "" when v is already
// installed or nothing is close.
func closestVersion(v string, installed []reconcile.VersionEntry) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ""
	}
	best, bestDist := "", 4
	for _, e := range installed {
		cand := reconcile.PythonVersion(e.Version)
		if cand == "" {
			cand = e.Version
		}
		d := levenshtein.ComputeDistance(v, strings.ToLower(cand))
		if d == 0 {
			return ""
		}
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

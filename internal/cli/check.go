package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
	"uvctl/internal/system"
)

type checkReport struct {
	Tool     string              `json:"tool"`
	State    reconcile.ToolState `json:"state"`
	Platform system.Platform     `json:"platform"`
	Error    string              `json:"error,omitempty"`
}

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether uv is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		out, err := runOp(cmd, core, catalog.CheckTool, "")
		if err != nil && !errors.Is(err, errReported) {
			return err
		}
		snap := out.Snapshot
		rep := checkReport{
			Tool:     core.Catalog.Tool(),
			State:    snap.Tool,
			Platform: system.Current(),
			Error:    snap.RefreshErr,
		}
		if checkJSON {
			if werr := writeJSON(cmd.OutOrStdout(), rep); werr != nil {
				return werr
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), snap.Tool.Line())
			fmt.Fprintln(cmd.OutOrStdout(), rep.Platform.String())
		}
		if err != nil {
			return err
		}
		if !snap.Tool.Installed {
			// non-zero when uv is missing
			return errReported
		}
		return nil
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uvctl/internal/catalog"
)

func init() {
	rootCmd.AddCommand(installUVCmd)
}

var installUVCmd = &cobra.Command{
	Use:   "install-uv",
	Short: "Install uv with the official installer script",
	Long:  "Downloads and runs the uv installer (curl | sh on Unix, PowerShell on Windows), then re-checks uv.",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Running: %s\n", core.Catalog.Installer().Describe())
		out, err := runOp(cmd, core, catalog.InstallTool, "")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out.Snapshot.Detail)
		fmt.Fprintln(w, out.Snapshot.Tool.Line())
		return nil
	},
}

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
)

var pythonCmd = &cobra.Command{
	Use:     "python",
	Aliases: []string{"py"},
	Short:   "Manage Python versions through uv",
}

var (
	pyLsJSON       bool
	pyRemoteFilter string
	pyRemoteJSON   bool
)

func init() {
	rootCmd.AddCommand(pythonCmd)
	pythonCmd.AddCommand(pyLsCmd, pyLsRemoteCmd)
	pyLsCmd.Flags().BoolVar(&pyLsJSON, "json", false, "output JSON")
	pyLsRemoteCmd.Flags().StringVarP(&pyRemoteFilter, "filter", "f", "", "fuzzy filter on the version key")
	pyLsRemoteCmd.Flags().BoolVar(&pyRemoteJSON, "json", false, "output JSON")
}

var pyLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List installed Python versions",
	Long:  "Runs `uv python list --only-installed` and prints one row per installed version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		out, err := runOp(cmd, core, catalog.ListInstalled, "")
		if err != nil {
			return err
		}
		vs := out.Snapshot.Versions
		if pyLsJSON {
			if vs == nil {
				vs = []reconcile.VersionEntry{}
			}
			return writeJSON(cmd.OutOrStdout(), vs)
		}
		if len(vs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No Python versions installed")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tSTATUS")
		for _, v := range vs {
			fmt.Fprintf(tw, "%s\t%s\n", v.Version, v.Status)
		}
		return tw.Flush()
	},
}

var pyLsRemoteCmd = &cobra.Command{
	Use:   "ls-remote",
	Short: "List Python versions uv can install",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		out, err := runOp(cmd, core, catalog.ListAvailable, "")
		if err != nil {
			return err
		}
		rows := filterAvailable(out.Snapshot.Available, pyRemoteFilter)
		if pyRemoteJSON {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", r.Key, r.Detail)
		}
		return tw.Flush()
	},
}

type availableKeys []reconcile.AvailableEntry

func (a availableKeys) String(i int) string { return a[i].Key }
func (a availableKeys) Len() int            { return len(a) }

// filterAvailable keeps rows whose key fuzzy-matches q, best match first.
// An empty query keeps every row in listing order.
func filterAvailable(rows []reconcile.AvailableEntry, q string) []reconcile.AvailableEntry {
	q = strings.TrimSpace(q)
	if q == "" {
		if rows == nil {
			return []reconcile.AvailableEntry{}
		}
		return rows
	}
	hits := fuzzy.FindFrom(q, availableKeys(rows))
	out := make([]reconcile.AvailableEntry, 0, len(hits))
	for _, h := range hits {
		out = append(out, rows[h.Index])
	}
	return out
}

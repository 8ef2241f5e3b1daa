package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"uvctl/internal/app"
	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
)

// runOp executes one operation through the reconciler. Ctrl+C cancels the
// running process. The detail line goes to stdout on success and stderr on
// failure; a failed process yields errReported.
func runOp(cmd *cobra.Command, core *app.Core, kind catalog.Kind, version string) (reconcile.Outcome, error) {
	ctx, cancel := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out, err := core.Reconciler.Do(ctx, catalog.NewOperation(kind, version))
	if err != nil {
		return out, err
	}
	if !out.Result.Success {
		fmt.Fprintln(cmd.ErrOrStderr(), out.Snapshot.Detail)
		return out, errReported
	}
	return out, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

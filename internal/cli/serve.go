package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"uvctl/internal/system"
	"uvctl/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port, default from config)")
	serveCmd.Flags().BoolP("open", "o", false, "open the state endpoint in the browser after start")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		addr, _ := cmd.Flags().GetString("addr")
		if strings.TrimSpace(addr) == "" {
			addr = core.Config.Serve.Addr
		}
		open, _ := cmd.Flags().GetBool("open")
		srv := &server.Server{
			Addr:       addr,
			Reconciler: core.Reconciler,
			History:    core.History,
			Logger:     system.Logger,
		}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// populate tool state and the installed list before the first request
		core.Reconciler.Init(ctx)

		url := fmt.Sprintf("http://%s/api/state", addr)
		system.Logger.Info("starting api", "url", url)
		if open {
			if err := server.OpenBrowser(url); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}

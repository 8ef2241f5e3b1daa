package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uvctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the configuration in an interactive form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		saved, err := settings.Run(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ saved %s\n\n", saved.Path())
		return nil
	},
}

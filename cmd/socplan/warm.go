package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uscsoc/socplan/internal/app"
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Fetch every department for the active term",
	Long: `Warm walks the department directory for the active term and fetches
each department's course data sequentially. A single department's
failure is logged and skipped; the rest of the run continues. Raw
responses land in the on-disk cache, so later queries avoid the
network entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.Warm(context.Background()); err != nil {
			return fmt.Errorf("warm failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(warmCmd)
}

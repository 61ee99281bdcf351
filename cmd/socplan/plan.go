package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uscsoc/socplan/internal/app"
)

var planCmd = &cobra.Command{
	Use:   "plan <section-id,section-id,...>",
	Short: "Assemble a conflict-free schedule from section ids",
	Long: `Plan validates the listed section ids against the active term,
rejects any pair that shares a meeting day with overlapping times, and
prints the resulting calendar events as JSON for the renderer.

Section ids only become valid once their department is cached; name
the owning departments with --dept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		ctx := context.Background()

		if depts, _ := cmd.Flags().GetString("dept"); depts != "" {
			if err := application.Preload(ctx, depts); err != nil {
				return err
			}
		}

		if _, err := application.AddSections(args[0]); err != nil {
			return err
		}

		events, err := application.Schedule()
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	planCmd.Flags().String("dept", "", "comma-separated departments to cache before validating ids")
	rootCmd.AddCommand(planCmd)
}

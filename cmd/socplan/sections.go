package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uscsoc/socplan/internal/app"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <course>",
	Short: "List a course's lecture sections as CSV",
	Long: `Sections accepts a loose course code ("CSCI 104", "csci104",
"CSCI0104A") and prints the course's lecture sections for the active
term. Labs and discussions are never listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		out, err := application.GetSections(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

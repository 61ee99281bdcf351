package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uscsoc/socplan/internal/app"
)

var coursesCmd = &cobra.Command{
	Use:   "courses <department>",
	Short: "List all courses of a department as CSV",
	Long: `Courses accepts a department code or name, exact or misspelled
("CSCI", "Computer Science", "Computr Scienc"), and prints the
department's courses for the active term. Fuzzy matches are flagged
with a caveat line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		out, err := application.GetCourses(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uscsoc/socplan/internal/app"
)

var deptsCmd = &cobra.Command{
	Use:   "depts",
	Short: "List the department directory for the active term",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		out, err := application.ListDepartments(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deptsCmd)
}

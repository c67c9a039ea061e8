package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/screening"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// version needs no configuration
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app, screening.Version)
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHistoryCmd creates the "digip history" subcommand.
func newHistoryCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent companion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			p, err := a.loadPet()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := p.History
			if len(entries) > count {
				entries = entries[len(entries)-count:]
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "  %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of entries to show")

	return cmd
}

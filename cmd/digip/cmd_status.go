package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the "digip status" subcommand.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the companion's current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			p, err := a.loadPet()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), statusView(p))
			return nil
		},
	}
}

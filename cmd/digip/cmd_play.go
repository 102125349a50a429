package main

import (
	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// newPlayCmd creates the "digip play" subcommand.
func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play with the companion",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.runAction(cmd.Context(), cmd.OutOrStdout(), eventlog.TypePlay, (*pet.Pet).Play)
		},
	}
}

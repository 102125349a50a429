package main

import (
	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// newFeedCmd creates the "digip feed" subcommand.
func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Feed the companion",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.runAction(cmd.Context(), cmd.OutOrStdout(), eventlog.TypeFeed, (*pet.Pet).Feed)
		},
	}
}

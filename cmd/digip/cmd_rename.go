package main

import (
	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// newRenameCmd creates the "digip rename" subcommand.
func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <new-name>",
		Short: "Rename the companion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.runAction(cmd.Context(), cmd.OutOrStdout(), eventlog.TypeRename, func(p *pet.Pet) pet.Result {
				return p.Rename(args[0])
			})
		},
	}
}

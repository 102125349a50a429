package main

import (
	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// newSleepCmd creates the "digip sleep" subcommand. It toggles: a sleeping
// companion wakes up, an awake one goes to sleep.
func newSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep",
		Short: "Put the companion to sleep, or wake it",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.runAction(cmd.Context(), cmd.OutOrStdout(), eventlog.TypeSleep, (*pet.Pet).ToggleSleep)
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digip/internal/version"
)

// newRootCmd creates the root digip command with all subcommands attached.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "digip",
		Short:         "DIGI-P Tycoon terminal companion",
		Long:          "digip is a terminal companion simulation.\nCare for your companion, trade with other agents, and browse the marketplace.",
		Version:       fmt.Sprintf("digip %s", version.String()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(
		newHatchCmd(),
		newStatusCmd(),
		newFeedCmd(),
		newPlayCmd(),
		newSleepCmd(),
		newRenameCmd(),
		newHistoryCmd(),
		newLogsCmd(),
		newTradeCmd(),
		newMarketCmd(),
		newDashCmd(),
	)

	return cmd
}

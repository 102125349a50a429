package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
)

// logsConfig holds flags for the logs command.
type logsConfig struct {
	tail    int
	typ     string
	subject string
}

// newLogsCmd creates the "digip logs" subcommand over the event log, the
// uncapped audit trail behind the companion's 50-entry history.
func newLogsCmd() *cobra.Command {
	var cfg logsConfig

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Query the action event log",
		Long:  "Displays events from the append-only action log: care actions,\ntrade transitions, and marketplace activity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			l, err := eventlog.Open(a.st.EventLogPath())
			if err != nil {
				return err
			}
			defer l.Close()

			events, err := l.Query(cmd.Context(), eventlog.QueryOpts{
				Type:    cfg.typ,
				Subject: cfg.subject,
				Limit:   cfg.tail,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No events.")
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(out, "%s  %-8s %-12s %s\n",
					e.CreatedAt.Format("2006-01-02 15:04:05"), e.Type, e.Subject, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.tail, "tail", 20, "number of recent events to show")
	cmd.Flags().StringVar(&cfg.typ, "type", "", "filter by event type")
	cmd.Flags().StringVar(&cfg.subject, "subject", "", "filter by subject")

	return cmd
}

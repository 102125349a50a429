package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
	"digip/pkg/trade"
)

// newTradeCmd creates the "digip trade" command group.
func newTradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Propose and respond to trade offers",
		Long:  "Trade offers are documents agents exchange through the shared state\ndirectory. Propose an offer, poll your inbox, then accept, reject, or\ncomplete it.",
	}

	cmd.AddCommand(
		newTradeProposeCmd(),
		newTradeInboxCmd(),
		newTradeOutboxCmd(),
		newTradeAcceptCmd(),
		newTradeRejectCmd(),
		newTradeCompleteCmd(),
		newTradeShowCmd(),
		newTradeReconcileCmd(),
	)

	return cmd
}

// tradeProposeConfig holds flags for trade propose.
type tradeProposeConfig struct {
	from         string
	to           string
	requestPet   string
	requestItems []string
}

// newTradeProposeCmd creates "digip trade propose".
func newTradeProposeCmd() *cobra.Command {
	var cfg tradeProposeConfig

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Offer your companion to another agent",
		Long:  "Snapshots your companion into a pending trade offer addressed to\nanother agent. Optionally name a companion or items you want in return.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			from := cfg.from
			if from == "" {
				from = a.cfg.Agent
			}
			if from == "" {
				return fmt.Errorf("no agent name: pass --from or set agent in config.toml")
			}

			p, err := a.loadPet()
			if err != nil {
				return err
			}

			var requestPet *pet.Record
			if cfg.requestPet != "" {
				requestPet = &pet.Record{Name: cfg.requestPet}
			}

			o, err := a.trades.Propose(from, cfg.to, p.Record(), requestPet, cfg.requestItems)
			if err != nil {
				return err
			}
			if err := a.logEvent(cmd.Context(), eventlog.TypeTrade, o.ID,
				fmt.Sprintf("%s offered %s to %s", from, p.Name, cfg.to)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trade proposed! ID: %s\n", o.ID)
			fmt.Fprintf(out, "Offering: %s (level %d)\n", o.OfferPet.Name, o.OfferPet.Level)
			if o.RequestPet != nil {
				fmt.Fprintf(out, "Requesting: %s\n", o.RequestPet.Name)
			}
			if len(o.RequestItems) > 0 {
				fmt.Fprintf(out, "Requesting items: %s\n", strings.Join(o.RequestItems, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.from, "from", "", "your agent name (defaults to agent in config.toml)")
	cmd.Flags().StringVar(&cfg.to, "to", "", "target agent name")
	cmd.Flags().StringVar(&cfg.requestPet, "request-pet", "", "companion name wanted in return")
	cmd.Flags().StringArrayVar(&cfg.requestItems, "request-item", nil, "item wanted in return (repeatable)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// newTradeInboxCmd creates "digip trade inbox".
func newTradeInboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inbox [agent]",
		Short: "List pending offers addressed to an agent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, agent, err := appWithAgent(args)
			if err != nil {
				return err
			}

			offers, err := a.trades.Inbox(agent)
			if err != nil {
				return err
			}
			printOffers(cmd.OutOrStdout(), offers, "No pending offers.")
			return nil
		},
	}
}

// newTradeOutboxCmd creates "digip trade outbox".
func newTradeOutboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outbox [agent]",
		Short: "List every offer an agent has proposed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, agent, err := appWithAgent(args)
			if err != nil {
				return err
			}

			offers, err := a.trades.Outbox(agent)
			if err != nil {
				return err
			}
			printOffers(cmd.OutOrStdout(), offers, "No proposed offers.")
			return nil
		},
	}
}

// newTradeAcceptCmd creates "digip trade accept".
func newTradeAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <trade-id>",
		Short: "Accept a pending offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return respondToTrade(cmd, args[0], true)
		},
	}
}

// newTradeRejectCmd creates "digip trade reject".
func newTradeRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <trade-id>",
		Short: "Reject a pending offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return respondToTrade(cmd, args[0], false)
		},
	}
}

// newTradeCompleteCmd creates "digip trade complete".
func newTradeCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <trade-id>",
		Short: "Finalize an accepted offer",
		Long:  "Marks an accepted offer completed and records it in the marketplace\nledger. Only accepted offers can be completed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			o, err := a.trades.Complete(args[0])
			if err != nil {
				return err
			}
			if err := a.logEvent(cmd.Context(), eventlog.TypeTrade, o.ID, "trade completed and ledgered"); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Trade %s COMPLETED and recorded!\n", o.ID)
			return nil
		},
	}
}

// newTradeShowCmd creates "digip trade show".
func newTradeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show one offer in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			o, err := a.trades.Get(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o == nil {
				fmt.Fprintf(out, "Trade %s not found.\n", args[0])
				return nil
			}

			fmt.Fprintf(out, "Trade %s [%s]\n", o.ID, o.Status)
			fmt.Fprintf(out, "  From: %s  To: %s\n", o.FromAgent, o.ToAgent)
			fmt.Fprintf(out, "  Offering: %s the %s (level %d)\n",
				o.OfferPet.Name, pet.DisplayName(o.OfferPet.Kind), o.OfferPet.Level)
			if o.RequestPet != nil {
				fmt.Fprintf(out, "  Requesting: %s\n", o.RequestPet.Name)
			}
			if len(o.RequestItems) > 0 {
				fmt.Fprintf(out, "  Requesting items: %s\n", strings.Join(o.RequestItems, ", "))
			}
			fmt.Fprintf(out, "  Created: %s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
			if o.CompletedAt != nil {
				fmt.Fprintf(out, "  Completed: %s\n", o.CompletedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

// newTradeReconcileCmd creates "digip trade reconcile".
func newTradeReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Re-ledger completed offers missing from the marketplace",
		Long:  "Scans for offers marked completed that never reached the marketplace\nledger (a crash between the two writes) and appends them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			n, err := a.trades.Reconcile()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reconciled %d trade(s) into the ledger.\n", n)
			return nil
		},
	}
}

// respondToTrade accepts or rejects an offer and logs the transition.
func respondToTrade(cmd *cobra.Command, id string, accept bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var o *trade.Offer
	if accept {
		o, err = a.trades.Accept(id)
	} else {
		o, err = a.trades.Reject(id)
	}
	if err != nil {
		return err
	}

	verb := "rejected"
	if accept {
		verb = "accepted"
	}
	if err := a.logEvent(cmd.Context(), eventlog.TypeTrade, o.ID, "trade "+verb); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if accept {
		fmt.Fprintf(out, "Trade %s ACCEPTED!\n", o.ID)
		fmt.Fprintln(out, "Both agents should now transfer companions, then run \"digip trade complete\".")
	} else {
		fmt.Fprintf(out, "Trade %s rejected.\n", o.ID)
	}
	return nil
}

// appWithAgent wires the app and resolves the agent name from the first
// positional arg or the config.
func appWithAgent(args []string) (*app, string, error) {
	a, err := newApp()
	if err != nil {
		return nil, "", err
	}

	agent := a.cfg.Agent
	if len(args) == 1 {
		agent = args[0]
	}
	if agent == "" {
		return nil, "", fmt.Errorf("no agent name: pass one or set agent in config.toml")
	}
	return a, agent, nil
}

// printOffers prints a one-line summary per offer.
func printOffers(out io.Writer, offers []trade.Offer, empty string) {
	if len(offers) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	for _, o := range offers {
		fmt.Fprintf(out, "%s [%s] %s -> %s: %s (level %d)\n",
			o.ID, o.Status, o.FromAgent, o.ToAgent, o.OfferPet.Name, o.OfferPet.Level)
	}
}

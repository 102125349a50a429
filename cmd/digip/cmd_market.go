package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"digip/pkg/eventlog"
	"digip/pkg/pet"
)

// newMarketCmd creates the "digip market" command group.
func newMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "List companions on the shared marketplace",
	}

	cmd.AddCommand(
		newMarketListCmd(),
		newMarketBrowseCmd(),
		newMarketRemoveCmd(),
		newMarketLedgerCmd(),
	)

	return cmd
}

// marketListConfig holds flags for market list.
type marketListConfig struct {
	agent string
	price int
	items []string
}

// newMarketListCmd creates "digip market list".
func newMarketListCmd() *cobra.Command {
	var cfg marketListConfig

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Advertise your companion on the marketplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			agent := cfg.agent
			if agent == "" {
				agent = a.cfg.Agent
			}
			if agent == "" {
				return fmt.Errorf("no agent name: pass --agent or set agent in config.toml")
			}

			p, err := a.loadPet()
			if err != nil {
				return err
			}

			var price *int
			if cmd.Flags().Changed("price") {
				price = &cfg.price
			}

			id, err := a.mkt.List(agent, p.Record(), price, cfg.items)
			if err != nil {
				return err
			}
			if err := a.logEvent(cmd.Context(), eventlog.TypeListing, id,
				fmt.Sprintf("%s listed %s", agent, p.Name)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Listed %s on the marketplace. ID: %s\n", p.Name, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.agent, "agent", "", "your agent name (defaults to agent in config.toml)")
	cmd.Flags().IntVar(&cfg.price, "price", 0, "asking price in credits")
	cmd.Flags().StringArrayVar(&cfg.items, "item", nil, "asking item (repeatable)")

	return cmd
}

// newMarketBrowseCmd creates "digip market browse".
func newMarketBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Show active marketplace listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			listings, err := a.mkt.ActiveListings()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listings) == 0 {
				fmt.Fprintln(out, "Nothing listed right now.")
				return nil
			}
			for _, l := range listings {
				asks := "open to offers"
				if l.AskingPrice != nil {
					asks = fmt.Sprintf("%d credits", *l.AskingPrice)
				}
				if len(l.AskingItems) > 0 {
					asks += " + " + strings.Join(l.AskingItems, ", ")
				}
				fmt.Fprintf(out, "%s  %s the %s (level %d) by %s, asking: %s\n",
					l.ID, l.Pet.Name, pet.DisplayName(l.Pet.Kind), l.Pet.Level, l.Agent, asks)
			}
			return nil
		},
	}
}

// newMarketRemoveCmd creates "digip market remove".
func newMarketRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <listing-id>",
		Short: "Take a listing off the marketplace",
		Long:  "Marks a listing removed. Removing an already-removed or unknown\nlisting is a no-op.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.mkt.Remove(args[0]); err != nil {
				return err
			}
			if err := a.logEvent(cmd.Context(), eventlog.TypeListing, args[0], "listing removed"); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Listing %s removed.\n", args[0])
			return nil
		},
	}
}

// newMarketLedgerCmd creates "digip market ledger".
func newMarketLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Show the completed-trade ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			trades, err := a.mkt.CompletedTrades()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(trades) == 0 {
				fmt.Fprintln(out, "No completed trades yet.")
				return nil
			}
			for _, o := range trades {
				when := ""
				if o.CompletedAt != nil {
					when = o.CompletedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%s  %s -> %s: %s (level %d)  %s\n",
					o.ID, o.FromAgent, o.ToAgent, o.OfferPet.Name, o.OfferPet.Level, when)
			}
			return nil
		},
	}
}

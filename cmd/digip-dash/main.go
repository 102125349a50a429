// Package main is the digip interactive care screen: live companion stats,
// single-key care actions, and incoming trade notifications.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"digip/pkg/config"
	"digip/pkg/eventlog"
	"digip/pkg/market"
	"digip/pkg/pet"
	"digip/pkg/store"
	"digip/pkg/trade"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "digip-dash needs a terminal; use the digip CLI for one-shot commands")
		os.Exit(1)
	}

	m, err := newModelFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.close()

	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newModelFromEnv wires the care screen from the state directory: store,
// config, saved companion, trade service, and event log.
func newModelFromEnv() (*Model, error) {
	home, err := config.ResolveHome()
	if err != nil {
		return nil, err
	}
	st, err := store.New(home)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(st.ConfigPath())
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(st.KindCatalogPath()); err == nil {
		if err := pet.LoadCatalog(st.KindCatalogPath()); err != nil {
			return nil, err
		}
	}

	p, err := st.LoadPet()
	if store.IsNotFound(err) {
		return nil, fmt.Errorf("no companion yet; hatch one with \"digip hatch\"")
	}
	if err != nil {
		return nil, err
	}

	log, err := eventlog.Open(st.EventLogPath())
	if err != nil {
		return nil, err
	}

	trades := trade.NewService(st, market.NewService(st))
	return newModel(st, cfg, trades, log, p), nil
}

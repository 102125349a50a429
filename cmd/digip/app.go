package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"digip/pkg/config"
	"digip/pkg/eventlog"
	"digip/pkg/market"
	"digip/pkg/pet"
	"digip/pkg/store"
	"digip/pkg/trade"
)

// app bundles the wired services every subcommand needs: the config, the
// document store, and the trade and marketplace services over it.
type app struct {
	cfg    config.Config
	st     *store.Store
	trades *trade.Service
	mkt    *market.Service
}

// newApp resolves the state directory, loads the config, applies any kind
// catalog override, and wires the services.
func newApp() (*app, error) {
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

	mkt := market.NewService(st)
	return &app{
		cfg:    cfg,
		st:     st,
		trades: trade.NewService(st, mkt),
		mkt:    mkt,
	}, nil
}

// loadPet loads the saved companion, turning a missing save into a hint to
// hatch one.
func (a *app) loadPet() (*pet.Pet, error) {
	p, err := a.st.LoadPet()
	if store.IsNotFound(err) {
		return nil, fmt.Errorf("no companion yet; hatch one with \"digip hatch\"")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// logEvent appends to the event log, opening and closing it around the
// write. One-shot commands write at most a few events each.
func (a *app) logEvent(ctx context.Context, typ, subject, message string) error {
	l, err := eventlog.Open(a.st.EventLogPath())
	if err != nil {
		return err
	}
	defer l.Close()
	return l.Append(ctx, typ, subject, message)
}

// runAction loads the companion, applies one care action, advances the
// time-step cadence, persists everything, and prints the outcome. Expected
// failures (sleeping, no food, too tired) print their message and succeed:
// they are results of the simulation, not command errors.
func (a *app) runAction(ctx context.Context, out io.Writer, eventType string, act func(*pet.Pet) pet.Result) error {
	p, err := a.loadPet()
	if err != nil {
		return err
	}

	res := act(p)
	wasAlive := p.Alive

	if err := a.advanceCadence(p); err != nil {
		return err
	}
	if err := a.st.SavePet(p); err != nil {
		return err
	}

	if res.OK {
		if err := a.logEvent(ctx, eventType, p.Name, res.Message); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, res.Message)

	if wasAlive && !p.Alive {
		if err := a.logEvent(ctx, eventlog.TypeDeath, p.Name, p.Name+" has passed away"); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nOH NO! %s has passed away...\n", p.Name)
	}
	return nil
}

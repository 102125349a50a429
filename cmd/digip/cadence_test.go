package main

import (
	"testing"
	"time"

	"digip/pkg/config"
	"digip/pkg/pet"
	"digip/pkg/store"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return &app{cfg: config.Default(), st: st}
}

func TestAdvanceCadenceActionsMode(t *testing.T) {
	a := newTestApp(t)
	a.cfg.ActionsPerTick = 3
	p := pet.New("Rex", pet.KindCrunch)

	for i := 0; i < 2; i++ {
		if err := a.advanceCadence(p); err != nil {
			t.Fatalf("advanceCadence: %v", err)
		}
	}
	if p.AgeTicks != 0 {
		t.Fatalf("age after 2 actions = %d, want 0", p.AgeTicks)
	}

	if err := a.advanceCadence(p); err != nil {
		t.Fatalf("advanceCadence: %v", err)
	}
	if p.AgeTicks != 1 {
		t.Errorf("age after 3 actions = %d, want 1", p.AgeTicks)
	}

	// Counter resets, so the next two actions do not tick.
	for i := 0; i < 2; i++ {
		if err := a.advanceCadence(p); err != nil {
			t.Fatalf("advanceCadence: %v", err)
		}
	}
	if p.AgeTicks != 1 {
		t.Errorf("age after 5 actions = %d, want 1", p.AgeTicks)
	}
}

func TestAdvanceCadenceIntervalMode(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Cadence = config.CadenceInterval
	a.cfg.TickIntervalSeconds = 60
	p := pet.New("Rex", pet.KindCrunch)

	// Backdate the last tick so three full intervals have elapsed.
	ts := tickState{LastTick: time.Now().UTC().Add(-3 * time.Minute)}
	if err := a.st.SaveDoc(a.tickStatePath(), ts); err != nil {
		t.Fatalf("SaveDoc: %v", err)
	}

	if err := a.advanceCadence(p); err != nil {
		t.Fatalf("advanceCadence: %v", err)
	}
	if p.AgeTicks != 3 {
		t.Errorf("age = %d, want 3", p.AgeTicks)
	}

	// Immediately after, no interval has elapsed.
	if err := a.advanceCadence(p); err != nil {
		t.Fatalf("advanceCadence: %v", err)
	}
	if p.AgeTicks != 3 {
		t.Errorf("age after immediate call = %d, want 3", p.AgeTicks)
	}
}

func TestAdvanceCadenceFirstRunStartsClock(t *testing.T) {
	a := newTestApp(t)
	a.cfg.Cadence = config.CadenceInterval
	p := pet.New("Rex", pet.KindCrunch)

	// No ticker state yet: the first action arms the clock without ticking.
	if err := a.advanceCadence(p); err != nil {
		t.Fatalf("advanceCadence: %v", err)
	}
	if p.AgeTicks != 0 {
		t.Errorf("age on first run = %d, want 0", p.AgeTicks)
	}
}

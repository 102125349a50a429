package main

import (
	"path/filepath"
	"time"

	"digip/pkg/config"
	"digip/pkg/pet"
	"digip/pkg/store"
)

// tickState is the cadence bookkeeping persisted between one-shot commands:
// how many actions have happened since the last time step, and when that
// step was.
type tickState struct {
	Actions  int       `json:"actions"`
	LastTick time.Time `json:"last_tick"`
}

// tickStatePath is the sidecar document next to the companion save. It is
// deliberately not part of the companion record: cadence is a session
// concern, not companion state.
func (a *app) tickStatePath() string {
	return filepath.Join(a.st.Base(), "ticker.json")
}

// advanceCadence counts one player action and applies any time steps it is
// due: every Nth action in actions mode, or one step per elapsed interval in
// interval mode.
func (a *app) advanceCadence(p *pet.Pet) error {
	var ts tickState
	if err := a.st.LoadDoc(a.tickStatePath(), &ts); err != nil && !store.IsNotFound(err) {
		return err
	}

	now := time.Now().UTC()
	if ts.LastTick.IsZero() {
		ts.LastTick = now
	}

	switch a.cfg.Cadence {
	case config.CadenceInterval:
		interval := time.Duration(a.cfg.TickIntervalSeconds) * time.Second
		for now.Sub(ts.LastTick) >= interval {
			p.Tick()
			ts.LastTick = ts.LastTick.Add(interval)
		}
	default:
		ts.Actions++
		if ts.Actions >= a.cfg.ActionsPerTick {
			p.Tick()
			ts.Actions = 0
			ts.LastTick = now
		}
	}

	return a.st.SaveDoc(a.tickStatePath(), ts)
}

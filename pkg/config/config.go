// Package config loads the digip configuration: the state directory that
// all persistence is rooted in, and the time-step cadence for the care
// screen and the one-shot CLI actions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvHome overrides the state directory.
const EnvHome = "DIGIP_HOME"

// defaultDir is the state directory under the user's home.
const defaultDir = ".digip"

// Cadence selects how time steps are triggered.
type Cadence string

// Cadence modes. The action-count cadence is the default: one tick every
// Nth player action, tying the passage of time to activity rather than to
// the wall clock. Interval mode ticks on a timer instead.
const (
	CadenceActions  Cadence = "actions"
	CadenceInterval Cadence = "interval"
)

// Config is the config.toml structure.
type Config struct {
	// Agent is this player's agent name in the trade protocol. Trade
	// commands fall back to it when no explicit agent flag is given.
	Agent string `toml:"agent"`

	// Cadence is "actions" (default) or "interval".
	Cadence Cadence `toml:"cadence"`

	// ActionsPerTick is how many player actions trigger one tick in
	// actions mode.
	ActionsPerTick int `toml:"actions_per_tick"`

	// TickIntervalSeconds is the timer period in interval mode.
	TickIntervalSeconds int `toml:"tick_interval"`
}

// Default returns the built-in configuration: action cadence, one tick per
// five actions, sixty-second interval fallback.
func Default() Config {
	return Config{
		Agent:               "",
		Cadence:             CadenceActions,
		ActionsPerTick:      5,
		TickIntervalSeconds: 60,
	}
}

// Load reads the config file at path, layering it over the defaults. A
// missing file yields the defaults with no error; a malformed or invalid
// file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cadence {
	case CadenceActions, CadenceInterval:
	default:
		return fmt.Errorf("cadence must be %q or %q, got %q", CadenceActions, CadenceInterval, c.Cadence)
	}
	if c.ActionsPerTick < 1 {
		return fmt.Errorf("actions_per_tick must be at least 1, got %d", c.ActionsPerTick)
	}
	if c.TickIntervalSeconds < 1 {
		return fmt.Errorf("tick_interval must be at least 1, got %d", c.TickIntervalSeconds)
	}
	return nil
}

// ResolveHome returns the state directory: DIGIP_HOME if set, otherwise
// ~/.digip.
func ResolveHome() (string, error) {
	if v := os.Getenv(EnvHome); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, defaultDir), nil
}

package main

import (
	"strings"
	"testing"
)

func TestFeedCmdReducesHunger(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch", "Crunch")

	out := mustRun(t, "feed")
	if !strings.Contains(out, "Crunch") {
		t.Errorf("feed output = %q, want it to mention the companion", out)
	}

	status := mustRun(t, "status")
	if !strings.Contains(status, "Hunger    [##........]  20") {
		t.Errorf("status after feed missing hunger 20, got: %s", status)
	}
}

func TestFeedCmdRunsOutOfFood(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch")

	mustRun(t, "feed")
	mustRun(t, "feed")
	mustRun(t, "feed")

	// Fourth feed hits an empty supply. A simulation outcome, not a
	// command error.
	out := mustRun(t, "feed")
	if !strings.Contains(out, "No food left! Time to forage...") {
		t.Errorf("output = %q, want the empty-supply message", out)
	}
}

func TestPlayCmdUpdatesStats(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch", "Crunch")

	mustRun(t, "play")

	status := mustRun(t, "status")
	if !strings.Contains(status, "Happiness [#######...]  75") {
		t.Errorf("status missing happiness 75, got: %s", status)
	}
	if !strings.Contains(status, "Energy    [###.......]  35") {
		t.Errorf("status missing energy 35, got: %s", status)
	}
}

func TestSleepCmdGatesActions(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch", "Crunch")

	out := mustRun(t, "sleep")
	if !strings.Contains(out, "Crunch curls up and falls asleep...") {
		t.Errorf("sleep output = %q", out)
	}

	out = mustRun(t, "feed")
	if !strings.Contains(out, "Zzz... Crunch is sleeping!") {
		t.Errorf("feed-while-sleeping output = %q", out)
	}

	out = mustRun(t, "sleep")
	if !strings.Contains(out, "wakes up refreshed") {
		t.Errorf("wake output = %q", out)
	}
}

func TestRenameCmd(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch", "Crunch")

	mustRun(t, "rename", "Rex")

	status := mustRun(t, "status")
	if !strings.Contains(status, "Rex the Crunch") {
		t.Errorf("status after rename = %q, want Rex", status)
	}
}

func TestActionCadenceAgesCompanion(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch")

	// Default cadence ticks every fifth action. Failed actions count too.
	for i := 0; i < 4; i++ {
		mustRun(t, "feed")
	}
	status := mustRun(t, "status")
	if !strings.Contains(status, "Age 0 ticks") {
		t.Errorf("status after 4 actions missing age 0, got: %s", status)
	}

	mustRun(t, "play")
	status = mustRun(t, "status")
	if !strings.Contains(status, "Age 1 ticks") {
		t.Errorf("status after 5 actions missing age 1, got: %s", status)
	}
}

func TestHistoryCmd(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch", "Crunch")
	mustRun(t, "rename", "Rex")

	out := mustRun(t, "history")
	if !strings.Contains(out, "Crunch the Crunch was born!") {
		t.Errorf("history missing birth entry, got: %s", out)
	}
	if !strings.Contains(out, "Rex") {
		t.Errorf("history missing rename entry, got: %s", out)
	}
}

func TestActionsNeedACompanion(t *testing.T) {
	newTestHome(t)

	for _, args := range [][]string{{"feed"}, {"play"}, {"sleep"}, {"status"}, {"rename", "X"}} {
		if _, err := runCLI(t, args...); err == nil {
			t.Errorf("digip %s: expected error without a companion", strings.Join(args, " "))
		} else if !strings.Contains(err.Error(), "hatch") {
			t.Errorf("digip %s: error %q should hint at hatching", strings.Join(args, " "), err)
		}
	}
}

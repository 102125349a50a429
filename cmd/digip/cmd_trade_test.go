package main

import (
	"strings"
	"testing"
)

// proposeTestTrade hatches a companion and proposes an offer from alice to
// bob, returning the trade ID.
func proposeTestTrade(t *testing.T) string {
	t.Helper()

	mustRun(t, "hatch", "Crunch")
	out := mustRun(t, "trade", "propose", "--from", "alice", "--to", "bob")

	_, rest, found := strings.Cut(out, "ID: ")
	if !found {
		t.Fatalf("propose output missing trade ID: %s", out)
	}
	id := strings.Fields(rest)[0]
	if id == "" {
		t.Fatalf("empty trade ID in output: %s", out)
	}
	return id
}

func TestTradeProposeAndInbox(t *testing.T) {
	newTestHome(t)
	id := proposeTestTrade(t)

	inbox := mustRun(t, "trade", "inbox", "bob")
	if !strings.Contains(inbox, id) {
		t.Errorf("bob's inbox missing trade %s, got: %s", id, inbox)
	}

	outbox := mustRun(t, "trade", "outbox", "alice")
	if !strings.Contains(outbox, id) {
		t.Errorf("alice's outbox missing trade %s, got: %s", id, outbox)
	}

	empty := mustRun(t, "trade", "inbox", "alice")
	if !strings.Contains(empty, "No pending offers.") {
		t.Errorf("alice's inbox should be empty, got: %s", empty)
	}
}

func TestTradeProposeNeedsAgents(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch")

	if _, err := runCLI(t, "trade", "propose", "--to", "bob"); err == nil {
		t.Error("expected error without a from agent")
	}
	if _, err := runCLI(t, "trade", "propose", "--from", "alice"); err == nil {
		t.Error("expected error without the required --to flag")
	}
}

func TestTradeAcceptCompleteLedgers(t *testing.T) {
	newTestHome(t)
	id := proposeTestTrade(t)

	out := mustRun(t, "trade", "accept", id)
	if !strings.Contains(out, "ACCEPTED") {
		t.Errorf("accept output = %q", out)
	}

	// Accepted offers leave the pending inbox.
	inbox := mustRun(t, "trade", "inbox", "bob")
	if !strings.Contains(inbox, "No pending offers.") {
		t.Errorf("inbox after accept should be empty, got: %s", inbox)
	}

	out = mustRun(t, "trade", "complete", id)
	if !strings.Contains(out, "COMPLETED") {
		t.Errorf("complete output = %q", out)
	}

	ledger := mustRun(t, "market", "ledger")
	if !strings.Contains(ledger, id) {
		t.Errorf("ledger missing completed trade %s, got: %s", id, ledger)
	}
}

func TestTradeCompleteRequiresAccepted(t *testing.T) {
	newTestHome(t)
	id := proposeTestTrade(t)

	if _, err := runCLI(t, "trade", "complete", id); err == nil {
		t.Fatal("expected error completing a pending offer")
	}

	mustRun(t, "trade", "reject", id)
	if _, err := runCLI(t, "trade", "complete", id); err == nil {
		t.Fatal("expected error completing a rejected offer")
	}
}

func TestTradeShow(t *testing.T) {
	newTestHome(t)
	id := proposeTestTrade(t)

	out := mustRun(t, "trade", "show", id)
	for _, want := range []string{id, "pending", "alice", "bob", "Crunch"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q, got: %s", want, out)
		}
	}

	out = mustRun(t, "trade", "show", "no-such-id")
	if !strings.Contains(out, "not found") {
		t.Errorf("show unknown = %q, want not found", out)
	}
}

func TestTradeUnknownIDErrors(t *testing.T) {
	newTestHome(t)
	mustRun(t, "hatch")

	for _, sub := range []string{"accept", "reject", "complete"} {
		if _, err := runCLI(t, "trade", sub, "no-such-id"); err == nil {
			t.Errorf("trade %s: expected error for unknown ID", sub)
		}
	}
}

func TestTradeReconcileCleanState(t *testing.T) {
	newTestHome(t)
	id := proposeTestTrade(t)
	mustRun(t, "trade", "accept", id)
	mustRun(t, "trade", "complete", id)

	out := mustRun(t, "trade", "reconcile")
	if !strings.Contains(out, "Reconciled 0 trade(s)") {
		t.Errorf("reconcile output = %q, want 0 trades", out)
	}
}

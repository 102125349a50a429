package eventlog_test

import (
	"context"
	"path/filepath"
	"testing"

	"digip/pkg/eventlog"
)

func openTestLog(t *testing.T) *eventlog.Log {
	t.Helper()
	l, err := eventlog.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("eventlog.Open: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestAppendAndTail(t *testing.T) {
	t.Parallel()

	l := openTestLog(t)
	ctx := context.Background()

	appends := []struct{ typ, subject, msg string }{
		{eventlog.TypeHatch, "Crunch", "Crunch the Crunch was born!"},
		{eventlog.TypeFeed, "Crunch", "Fed Crunch"},
		{eventlog.TypePlay, "Crunch", "Played with Crunch"},
	}
	for _, a := range appends {
		if err := l.Append(ctx, a.typ, a.subject, a.msg); err != nil {
			t.Fatalf("Append(%s): %v", a.typ, err)
		}
	}

	events, err := l.Tail(ctx, 2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Tail(2) = %d events", len(events))
	}
	// Newest first.
	if events[0].Type != eventlog.TypePlay || events[1].Type != eventlog.TypeFeed {
		t.Errorf("tail order = %s,%s want play,feed", events[0].Type, events[1].Type)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestQueryFilters(t *testing.T) {
	t.Parallel()

	l := openTestLog(t)
	ctx := context.Background()

	if err := l.Append(ctx, eventlog.TypeFeed, "Crunch", "Fed Crunch"); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(ctx, eventlog.TypeTrade, "t-1", "trade t-1 accepted"); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(ctx, eventlog.TypeTrade, "t-2", "trade t-2 proposed"); err != nil {
		t.Fatal(err)
	}

	byType, err := l.Query(ctx, eventlog.QueryOpts{Type: eventlog.TypeTrade})
	if err != nil {
		t.Fatalf("Query by type: %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("trade events = %d, want 2", len(byType))
	}

	bySubject, err := l.Query(ctx, eventlog.QueryOpts{Subject: "t-1"})
	if err != nil {
		t.Fatalf("Query by subject: %v", err)
	}
	if len(bySubject) != 1 || bySubject[0].Message != "trade t-1 accepted" {
		t.Errorf("subject query = %+v", bySubject)
	}
}

func TestTailEmptyLog(t *testing.T) {
	t.Parallel()

	l := openTestLog(t)

	events, err := l.Tail(context.Background(), 10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("empty log tail = %+v", events)
	}
}

func TestCloseTwice(t *testing.T) {
	t.Parallel()

	l, err := eventlog.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

package trade

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"digip/pkg/pet"
	"digip/pkg/store"
)

// Ledger is the marketplace's append-only record of completed trades. The
// trade service appends to it after an offer's own document is durably
// completed.
type Ledger interface {
	// AppendCompleted records a completed offer. It must not mutate or
	// reorder previously appended entries.
	AppendCompleted(o Offer) error
	// CompletedIDs returns the ids already present in the ledger.
	CompletedIDs() (map[string]bool, error)
}

// Service drives trade offers against a store. IDs come from uuid; the
// clock is injectable for tests.
type Service struct {
	st     *store.Store
	ledger Ledger
	now    func() time.Time
	newID  func() string
}

// NewService creates a trade service over st, appending completed trades to
// ledger.
func NewService(st *store.Store, ledger Ledger) *Service {
	return &Service{
		st:     st,
		ledger: ledger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithClock replaces the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Propose creates and persists a pending offer from one agent to another.
// offerPet is snapshotted into the offer; requestPet and requestItems are
// optional.
func (s *Service) Propose(fromAgent, toAgent string, offerPet pet.Record, requestPet *pet.Record, requestItems []string) (*Offer, error) {
	if fromAgent == "" || toAgent == "" {
		return nil, fmt.Errorf("propose trade: both agent names are required")
	}
	if requestItems == nil {
		requestItems = []string{}
	}

	o := &Offer{
		ID:           s.newID(),
		FromAgent:    fromAgent,
		ToAgent:      toAgent,
		OfferPet:     offerPet,
		RequestPet:   requestPet,
		RequestItems: requestItems,
		Status:       StatusPending,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get returns the offer with the given id, or nil when no such offer exists.
// A missing offer is an expected condition, not an error.
func (s *Service) Get(id string) (*Offer, error) {
	var o Offer
	err := s.st.LoadDoc(s.st.TradePath(id), &o)
	if store.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Inbox returns the pending offers addressed to agent, oldest first.
func (s *Service) Inbox(agent string) ([]Offer, error) {
	return s.scan(func(o Offer) bool {
		return o.ToAgent == agent && o.Status == StatusPending
	})
}

// Outbox returns every offer proposed by agent regardless of status, oldest
// first.
func (s *Service) Outbox(agent string) ([]Offer, error) {
	return s.scan(func(o Offer) bool {
		return o.FromAgent == agent
	})
}

// Accept transitions the offer to accepted and persists it.
func (s *Service) Accept(id string) (*Offer, error) {
	return s.apply(id, (*Offer).Accept)
}

// Reject transitions the offer to rejected and persists it.
func (s *Service) Reject(id string) (*Offer, error) {
	return s.apply(id, (*Offer).Reject)
}

// Complete transitions an accepted offer to completed, persists it, and then
// appends its snapshot to the ledger. The ledger write is sequenced after
// the offer's own write; a crash in between leaves a completed offer that
// Reconcile picks up later.
func (s *Service) Complete(id string) (*Offer, error) {
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &NotFoundError{ID: id}
	}

	if err := o.Complete(s.now()); err != nil {
		return nil, err
	}
	if err := s.save(o); err != nil {
		return nil, err
	}
	if err := s.ledger.AppendCompleted(*o); err != nil {
		return nil, fmt.Errorf("ledger completed trade %s: %w", id, err)
	}
	return o, nil
}

// Reconcile appends any completed offer missing from the ledger, recovering
// from a crash between the offer write and the ledger write. It returns the
// number of offers appended.
func (s *Service) Reconcile() (int, error) {
	ledgered, err := s.ledger.CompletedIDs()
	if err != nil {
		return 0, err
	}

	completed, err := s.scan(func(o Offer) bool {
		return o.Status == StatusCompleted && !ledgered[o.ID]
	})
	if err != nil {
		return 0, err
	}

	for _, o := range completed {
		if err := s.ledger.AppendCompleted(o); err != nil {
			return 0, fmt.Errorf("ledger completed trade %s: %w", o.ID, err)
		}
	}
	return len(completed), nil
}

// apply loads the offer, runs the transition, and persists the result.
func (s *Service) apply(id string, transition func(*Offer) error) (*Offer, error) {
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &NotFoundError{ID: id}
	}
	if err := transition(o); err != nil {
		return nil, err
	}
	if err := s.save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// save persists the full offer document in one atomic write.
func (s *Service) save(o *Offer) error {
	return s.st.SaveDoc(s.st.TradePath(o.ID), o)
}

// scan reads every offer document and returns those matching keep, ordered
// by creation time.
func (s *Service) scan(keep func(Offer) bool) ([]Offer, error) {
	entries, err := os.ReadDir(s.st.TradeDir())
	if err != nil {
		return nil, fmt.Errorf("scan trades: %w", err)
	}

	var out []Offer
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		var o Offer
		if err := s.st.LoadDoc(filepath.Join(s.st.TradeDir(), e.Name()), &o); err != nil {
			return nil, err
		}
		if keep(o) {
			out = append(out, o)
		}
	}

	// Oldest first; id breaks ties so the order is stable across scans.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

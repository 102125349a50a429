// Package market implements the shared marketplace: an ordered set of
// listings with logical removal, and the append-only ledger of completed
// trades. Everything lives in one shared document; every mutation is a
// read-modify-write guarded by a version counter so a lost update surfaces
// as a conflict instead of silently winning.
package market

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"digip/pkg/pet"
	"digip/pkg/store"
	"digip/pkg/trade"
)

// ListingStatus is a marketplace listing's state. Removal is logical; a
// removed listing stays in the document.
type ListingStatus string

// Listing states.
const (
	ListingActive  ListingStatus = "active"
	ListingRemoved ListingStatus = "removed"
)

// Listing is a companion advertised for trade.
type Listing struct {
	ID          string        `json:"listing_id"`
	Agent       string        `json:"agent"`
	Pet         pet.Record    `json:"pet"`
	AskingPrice *int          `json:"asking_price,omitempty"`
	AskingItems []string      `json:"asking_items"`
	ListedAt    time.Time     `json:"listed_at"`
	Status      ListingStatus `json:"status"`
}

// Document is the persisted marketplace record. Version increments on every
// save and detects concurrent writers.
type Document struct {
	Version         int           `json:"version"`
	Listings        []Listing     `json:"listings"`
	CompletedTrades []trade.Offer `json:"completed_trades"`
}

// ConflictError indicates the marketplace document changed on disk between
// the read and the write of a read-modify-write cycle. The caller should
// reload and retry.
type ConflictError struct {
	Expected int
	Found    int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("marketplace version conflict: read %d, disk has %d", e.Expected, e.Found)
}

// Service drives the shared marketplace document through a store.
type Service struct {
	st    *store.Store
	now   func() time.Time
	newID func() string
}

// NewService creates a marketplace service over st.
func NewService(st *store.Store) *Service {
	return &Service{
		st:    st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock replaces the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List appends an active listing for agent's companion and returns the new
// listing id. askingPrice and askingItems are optional.
func (s *Service) List(agent string, snapshot pet.Record, askingPrice *int, askingItems []string) (string, error) {
	if agent == "" {
		return "", fmt.Errorf("list companion: agent name is required")
	}
	if askingItems == nil {
		askingItems = []string{}
	}

	doc, err := s.Load()
	if err != nil {
		return "", err
	}

	l := Listing{
		ID:          s.newID(),
		Agent:       agent,
		Pet:         snapshot,
		AskingPrice: askingPrice,
		AskingItems: askingItems,
		ListedAt:    s.now().UTC(),
		Status:      ListingActive,
	}
	doc.Listings = append(doc.Listings, l)

	if err := s.Save(&doc); err != nil {
		return "", err
	}
	return l.ID, nil
}

// ActiveListings returns the active listings in listing order.
func (s *Service) ActiveListings() ([]Listing, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	var out []Listing
	for _, l := range doc.Listings {
		if l.Status == ListingActive {
			out = append(out, l)
		}
	}
	return out, nil
}

// Remove marks the listing with the given id removed. An unknown id is a
// silent no-op: removal is idempotent so retrying agents never see an error.
func (s *Service) Remove(id string) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	changed := false
	for i := range doc.Listings {
		if doc.Listings[i].ID == id && doc.Listings[i].Status == ListingActive {
			doc.Listings[i].Status = ListingRemoved
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	return s.Save(&doc)
}

// CompletedTrades returns the ledger in append order.
func (s *Service) CompletedTrades() ([]trade.Offer, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.CompletedTrades, nil
}

// AppendCompleted adds a completed offer to the ledger. Existing entries are
// never touched. Implements trade.Ledger.
func (s *Service) AppendCompleted(o trade.Offer) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}
	doc.CompletedTrades = append(doc.CompletedTrades, o)
	return s.Save(&doc)
}

// CompletedIDs returns the offer ids already in the ledger. Implements
// trade.Ledger.
func (s *Service) CompletedIDs() (map[string]bool, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(doc.CompletedTrades))
	for _, o := range doc.CompletedTrades {
		ids[o.ID] = true
	}
	return ids, nil
}

// Load reads the marketplace document, treating a missing file as an empty
// marketplace.
func (s *Service) Load() (Document, error) {
	doc := Document{Listings: []Listing{}, CompletedTrades: []trade.Offer{}}
	err := s.st.LoadDoc(s.st.MarketPath(), &doc)
	if err != nil && !store.IsNotFound(err) {
		return Document{}, err
	}
	return doc, nil
}

// Save writes the document back, first re-reading the on-disk version: if
// another writer got there since the load, the save fails with
// *ConflictError rather than clobbering their update. On success the
// document's version is bumped in place.
func (s *Service) Save(doc *Document) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	if current.Version != doc.Version {
		return &ConflictError{Expected: doc.Version, Found: current.Version}
	}

	doc.Version++
	return s.st.SaveDoc(s.st.MarketPath(), *doc)
}

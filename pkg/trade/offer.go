// Package trade implements the offer protocol between agents: a trade offer
// has a guarded state machine (pending to accepted or rejected, accepted to
// completed), is persisted as one document per offer, and lands in the
// marketplace ledger on completion.
package trade

import (
	"time"

	"digip/pkg/pet"
)

// Status is a trade offer's lifecycle state.
type Status string

// Offer lifecycle states.
const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Offer is a proposed exchange between two agents. OfferPet is a snapshot of
// the companion at proposal time, not a live reference. A completed or
// rejected offer is immutable.
type Offer struct {
	ID           string      `json:"trade_id"`
	FromAgent    string      `json:"from_agent"`
	ToAgent      string      `json:"to_agent"`
	OfferPet     pet.Record  `json:"offer_pet"`
	RequestPet   *pet.Record `json:"request_pet,omitempty"`
	RequestItems []string    `json:"request_items"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// Accept transitions a pending offer to accepted.
func (o *Offer) Accept() error {
	return o.transition(StatusPending, StatusAccepted)
}

// Reject transitions a pending offer to rejected.
func (o *Offer) Reject() error {
	return o.transition(StatusPending, StatusRejected)
}

// Complete transitions an accepted offer to completed and stamps
// CompletedAt. Completing from any other state, including pending, is an
// invalid transition.
func (o *Offer) Complete(now time.Time) error {
	if err := o.transition(StatusAccepted, StatusCompleted); err != nil {
		return err
	}
	t := now.UTC()
	o.CompletedAt = &t
	return nil
}

// transition moves the offer from the required state to next, or fails with
// *InvalidTransitionError.
func (o *Offer) transition(required, next Status) error {
	if o.Status != required {
		return &InvalidTransitionError{ID: o.ID, From: o.Status, To: next}
	}
	o.Status = next
	return nil
}

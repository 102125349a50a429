package trade

import "fmt"

// InvalidTransitionError indicates a disallowed offer state change, such as
// completing an offer that was never accepted.
type InvalidTransitionError struct {
	ID   string
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("trade %s: invalid transition %s -> %s", e.ID, e.From, e.To)
}

// NotFoundError indicates no offer exists for the given id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("trade %s not found", e.ID)
}

package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// It signals a state-machine violation: either a programming error or the
// losing side of two concurrent transition attempts on the same order.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError reports a refused state transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Dispatched ──> Delivered
//	   │            │
//	   └────────────┴──────> Cancelled
//
// Placed and Dispatched are transient; Delivered and Cancelled are terminal
// and immutable: a completed cash transaction is never reopened.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status: stock is reserved and the order waits
	// to be handed to the courier channel.
	Placed

	// Dispatched means the anonymized payload has reached the courier
	// channel and the order is out for delivery.
	Dispatched

	// Delivered is the terminal success state. Reaching it appends exactly
	// one revenue entry.
	Delivered

	// Cancelled is the terminal failure state. Reaching it releases the
	// stock reservation.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Placed:     "Placed",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Placed || s > Cancelled {
		return &InvalidTransitionError{From: s, To: s}
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Dispatch transitions the status to Dispatched.
// Valid only from Placed.
func (s Status) Dispatch() (Status, error) {
	if s != Placed {
		return 0, &InvalidTransitionError{From: s, To: Dispatched}
	}
	return Dispatched, nil
}

// Deliver transitions the status to Delivered.
// Valid only from Dispatched: an order must be on the road before it can
// arrive.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return 0, &InvalidTransitionError{From: s, To: Delivered}
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from Placed and Dispatched; delivered orders are immutable.
func (s Status) Cancel() (Status, error) {
	if s != Placed && s != Dispatched {
		return 0, &InvalidTransitionError{From: s, To: Cancelled}
	}
	return Cancelled, nil
}

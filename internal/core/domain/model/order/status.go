package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// ErrStatusTransitionIsInvalid is returned for any move the transition table
// does not allow, including moves out of a final state. Callers use it to
// distinguish lifecycle conflicts from malformed input.
var ErrStatusTransitionIsInvalid = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │           │
//	   └───────────┴──> Cancelled
//
// Delivered and Cancelled are final states. Status is a value object that
// validates transitions and provides string representations for persistence
// and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned by checkout.
	Placed

	// Preparing indicates the kitchen has accepted the order.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered indicates the order reached the customer. Final.
	Delivered

	// Cancelled indicates the order was abandoned before handoff. Final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// allowedTransitions is the closed transition table for order statuses.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a status name as submitted over the API or read
// from storage. Returns an error for anything outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are allowed from the status.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving to next is allowed by the table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (next, nil) when the table allows the move
//   - (0, error) otherwise, including any move out of a final state
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: from %s to %s", ErrStatusTransitionIsInvalid, s.String(), next.String())
	}

	return next, nil
}

package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that only
// defined transitions are accepted.
//
// State transitions:
//
//	Placed ──> Assigned ──> OutForDelivery ──> Delivered
//	   │           │               │
//	   └───────────┴───────────────┴──> Cancelled
//
// Assigned orders may also go straight to Delivered, matching callers that
// skip the out-for-delivery step. Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when an order is created.
	// Orders in this status are waiting for an agent assignment.
	StatusPlaced

	// StatusAssigned indicates a delivery agent has been assigned.
	StatusAssigned

	// StatusOutForDelivery indicates the agent is on the way to the customer.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPlaced:         "placed",
		StatusAssigned:       "assigned",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// transitions is the closed set of allowed status changes.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPlaced:         {StatusAssigned, StatusCancelled},
		StatusAssigned:       {StatusOutForDelivery, StatusDelivered, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses the persisted status representation.
// Unknown strings are rejected; the set of statuses is closed.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted representation, for example "out_for_delivery".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	next, ok := transitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the transition table allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (next, nil) when the transition table allows the move
//   - (0, error) otherwise, including for invalid source or target values
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next))
	}

	return next, nil
}

// ValidateAssign checks if an agent can be assigned from the current status.
// Only placed orders accept an assignment.
func (s Status) ValidateAssign() error {
	if s != StatusPlaced {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign an agent", s))
	}
	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Placed -> Assigned
//
// Returns:
//   - (StatusAssigned, nil) on valid transition
//   - (0, error) if the order is not awaiting assignment
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return StatusAssigned, nil
}

package agent

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the availability state of a delivery agent.
//
// State transitions:
//
//	Available ──> Busy ──> Available
//
// An agent is Busy exactly while it carries a current order; completing the
// delivery returns it to Available.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the agent can be assigned an order.
	StatusAvailable

	// StatusBusy means the agent is out delivering its current order.
	StatusBusy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusAvailable: "available",
		StatusBusy:      "busy",
	}
}

// StatusFromString parses the persisted status representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid agent status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}

// String returns the persisted representation, "available" or "busy".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

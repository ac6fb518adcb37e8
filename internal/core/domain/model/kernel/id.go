package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Identifier prefixes for the entity collections.
const (
	RestaurantPrefix = "rest"
	MenuItemPrefix   = "item"
	CustomerPrefix   = "cust"
	AgentPrefix      = "agent"
	OrderPrefix      = "order"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that represents a generated entity identifier of the
// form <prefix>_<sequence>, for example "rest_1" or "order_42".
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString. ID is immutable and safe to copy.
type ID struct {
	value string
}

// NewID builds an identifier from a prefix and a 1-based sequence number.
// The sequence number is derived from the size of the owning collection at
// creation time.
//
// Example:
//
//	id, err := kernel.NewID(kernel.OrderPrefix, 3)
//	// id.String() == "order_3"
func NewID(prefix string, sequence int) (ID, error) {
	if prefix == "" {
		return ID{}, errs.NewValueIsRequiredError("prefix")
	}
	if sequence < 1 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}

	return ID{value: fmt.Sprintf("%s_%d", prefix, sequence)}, nil
}

// IDFromString parses an identifier from its string representation.
// It accepts the <prefix>_<sequence> format produced by NewID and is typically
// used when reconstructing entities from persistence or parsing request input.
func IDFromString(s string) (ID, error) {
	prefix, seq, ok := strings.Cut(s, "_")
	if !ok || prefix == "" {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q does not match <prefix>_<sequence>", s))
	}

	n, err := strconv.Atoi(seq)
	if err != nil || n < 1 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q does not carry a positive sequence number", s))
	}

	return ID{value: s}, nil
}

// Validate ensures the ID was created through a constructor.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}

// IsZero reports whether the ID is the invalid zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// IsEqual compares two identifiers by their string value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Sequence returns the numeric part of the identifier.
// Returns 0 for the zero value.
func (id ID) Sequence() int {
	_, seq, ok := strings.Cut(id.value, "_")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return 0
	}
	return n
}

// String returns the full identifier, for example "cust_7".
func (id ID) String() string {
	return id.value
}

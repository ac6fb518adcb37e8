// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - ID: generated string identifiers of the form <prefix>_<sequence>
//   - RoundToCents: the 2-decimal rounding rule applied to all monetary amounts
//
// Identifiers are allocated sequentially from the size of their collection at
// creation time. Nothing is ever deleted in this system, so sequence numbers
// stay unique under the append-only discipline.
package kernel

// Package order provides domain entities and business logic for the order
// lifecycle: placement, agent assignment, and status transitions through to
// delivery.
//
// The package includes:
//   - Order: the aggregate root holding the line-item snapshot, pricing, and
//     lifecycle state
//   - LineItem: an immutable (item, captured name, captured price, quantity)
//     entry within an order
//   - Status: a state machine with an explicit transition table
//
// Key business rules:
//   - An order is never created without at least one line item
//   - Line items snapshot menu name and price at placement; later catalog
//     changes never affect existing orders
//   - The total always includes exactly one delivery fee, rounded to 2 decimals
//   - Status transitions follow the table in Status; arbitrary jumps are
//     rejected rather than silently accepted
package order

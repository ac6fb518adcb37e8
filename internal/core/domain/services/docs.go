// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food delivery system. It implements
// complex business workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - AgentDispatcher: A domain service for picking and assigning delivery agents to orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

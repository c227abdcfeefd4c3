// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shop system. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockLedger: A domain service for atomic all-or-nothing stock reservation
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

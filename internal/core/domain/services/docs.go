// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the quote engine. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - RequirementResolver: A domain service resolving pickup, address and
//     per-country field requirements for a shipment submission
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

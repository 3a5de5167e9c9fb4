// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery brokerage. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentResolver: resolves a driver account into the rider record a
//     delivery is assigned to, creating the record lazily on first assignment
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

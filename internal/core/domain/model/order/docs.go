// Package order provides domain entities and business logic for ride order
// management in the dispatch system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and non-empty customer name,
//     destination and reason
//   - Order status follows a defined workflow:
//     pending -> assigned -> in_progress -> completed,
//     with cancelled reachable from any non-terminal state
//   - Orders can be reassigned to another driver while in the assigned status
//   - completed and cancelled are terminal; transitions out of them are rejected
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package account provides the Account aggregate for users of the dispatch
// system. A driver is an account with the driver role; its availability
// status (offline, ready, on_road) is flipped by dispatch commands.
//
// Availability is intentionally not a guarded state machine: approve, reset,
// start and finish all set it unconditionally, mirroring the loose coupling
// between driver availability and order lifecycle.
package account

// Package request provides domain entities and business logic for delivery
// request management in the dispatch system. It implements the
// DeliveryRequest aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - DeliveryRequest: The aggregate root that manages request identity, dropoff, and lifecycle
//   - Status: A state machine that enforces valid request status transitions
//
// Key business rules:
//   - Requests must have a dropoff address inside the allowed service areas and a positive quantity
//   - Request status follows a defined workflow: Pending -> InProgress, with a
//     reversible InProgress -> Pending edge when a driver resigns
//   - A request carries an assigned driver if and only if it is in progress
//   - Completion removes the request from the active queue entirely; the
//     authoritative record then lives in the tracking ledger
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package request

// Package driver provides domain entities and business logic for driver
// management in the dispatch system. It implements the Driver aggregate root
// with carrying-capacity ("stock") handling.
//
// The package includes:
//   - Driver: The aggregate root that manages driver identity and stock
//
// Key business rules:
//   - Drivers must have a valid identifier, name, and password hash
//   - Stock is always within [0, MaxStock]
//   - Stock is debited when a delivery is accepted, credited back when it is
//     resigned, and never restored on completion
//   - Restocking is the only other path by which stock increases
//   - A driver may carry at most MaxActiveDeliveries concurrent deliveries
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver

// Package services provides domain services that implement business logic
// not naturally belonging to a single aggregate root.
//
// The package includes:
//   - RequestGenerator: produces synthetic delivery requests inside the
//     service areas, used by the scheduled intake job to feed the queue
package services

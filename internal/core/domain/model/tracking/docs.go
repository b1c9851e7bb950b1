// Package tracking contains the order tracking ledger.
//
// The ledger is an append-mostly record of what happened to delivery
// requests after a driver touched them. Two kinds of entries exist:
//
//   - ResignedPending: a driver resigned from a claimed request. The entry
//     marks the request as reclaimable; it is removed once any driver
//     accepts the request again. At most one such marker is active per
//     request at a time.
//   - Completed: a driver finished the delivery. Completed entries are
//     permanent and never mutated or deleted.
//
// Completed entries are the only record of a finished request, since the
// request itself leaves the active queue on completion.
package tracking

// Package order provides the ledger aggregate and status state machine for
// the kitchen fulfillment workflow.
//
// The package includes:
//   - Order: the aggregate root covering placement, preparation, collection,
//     and delivery of one order
//   - Line: an immutable snapshot of one selected ingredient
//   - Status: the state machine pending -> preparing -> ready ->
//     out_for_delivery -> delivered, with a kitchen skip from pending
//     straight to ready
//
// Key business rules:
//   - A user has at most one active (non-delivered) order at a time; the
//     lifecycle engine enforces this at placement
//   - Statuses only move forward; the one escape hatch is the admin bulk
//     clear, which deletes orders outright
//   - Order lines are fixed at placement, so catalog edits never rewrite
//     history
//   - Delivery is idempotent: a second deliver on a delivered order is a
//     no-op and does not reopen the owner's eligibility again
package order

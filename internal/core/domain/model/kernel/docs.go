// Package kernel provides core domain primitives shared across the order
// workflow model. It currently contains the UUID value object used as the
// identity type for users and ingredients.
//
// Order identity deliberately does not live here: order ids are monotonic
// integers assigned by the ledger (see the order package).
package kernel

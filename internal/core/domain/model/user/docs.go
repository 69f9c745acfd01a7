// Package user provides the roster aggregate for the order workflow.
//
// A User carries the three attributes the lifecycle engine consults: the role
// (admin or regular user), the cohort tag used by bulk eligibility toggles,
// and the delivery capability flag that gates order collection. Per-user
// ordering eligibility itself is not stored here; it lives in the eligibility
// store and is keyed by the user's id.
package user

package order

import (
	"fmt"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose statuses only ever move forward:
//
//	pending ──> preparing ──> ready ──> out_for_delivery ──> delivered
//	    └────────────────────> ready        (kitchen "mark ready" skip)
//
// MarkReady is deliberately permissive on the kitchen side of the flow
// (pending, preparing, and ready itself are all accepted) but refuses to pull
// an order back from the delivery leg. Admin bulk clear deletes orders
// outright and is not a transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order, waiting for
	// the kitchen to pick it up.
	Pending

	// Preparing indicates the kitchen is working through the order's
	// ingredient checklist.
	Preparing

	// Ready indicates the order is assembled and waiting for collection.
	Ready

	// OutForDelivery indicates a courier has collected the order.
	OutForDelivery

	// Delivered is the final status. Delivery reopens the owner's ordering
	// eligibility; a delivered order is no longer active.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// StatusFromString parses the persisted representation of a status.
// Returns an error for anything outside the declared vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the declared values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("pending", "ready", ...).
// Safe on any value; invalid statuses render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether an order in this status still blocks its owner
// from placing another order. Everything short of Delivered is active.
func (s Status) IsActive() bool {
	return s.Validate() == nil && s != Delivered
}

// StartPreparing transitions Pending to Preparing. Statuses at or beyond
// Preparing are returned unchanged: starting preparation twice is a no-op,
// not an error.
func (s Status) StartPreparing() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Pending {
		return Preparing, nil
	}
	return s, nil
}

// MarkReady transitions to Ready from Pending, Preparing, or Ready itself.
// Orders already collected or delivered cannot be pulled back.
func (s Status) MarkReady() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == OutForDelivery || s == Delivered {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}
	return Ready, nil
}

// Collect transitions Ready to OutForDelivery. Collection from any other
// status is refused; a courier can only take assembled orders.
func (s Status) Collect() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to collect", s.String()),
		)
	}
	return OutForDelivery, nil
}

// Deliver transitions OutForDelivery (or Ready, for direct handoffs that
// skipped collection) to Delivered. Delivering a delivered order is refused
// here; callers treat that case as an idempotent no-op before transitioning.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery && s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

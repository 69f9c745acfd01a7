package ports

// ChangeNotifier is the fire-and-forget broadcast hook the lifecycle engine
// invokes after each committed mutation. Implementations must be non-blocking
// and must never propagate failures back into the engine; events carry no
// payload beyond scope, and clients reconcile by re-fetching, so a dropped
// event costs one refresh, never correctness.
type ChangeNotifier interface {
	// OrderChanged announces that the given order was created or mutated.
	OrderChanged(orderID int64)

	// GeneralChanged announces a change without order scope: eligibility
	// toggles, roster or catalog edits, bulk clears.
	GeneralChanged()
}

// NopNotifier is a ChangeNotifier that drops every event. Useful in tests
// and as a default when no broadcast hub is wired.
type NopNotifier struct{}

// OrderChanged implements ChangeNotifier.
func (NopNotifier) OrderChanged(int64) {}

// GeneralChanged implements ChangeNotifier.
func (NopNotifier) GeneralChanged() {}

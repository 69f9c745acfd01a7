package order

import (
	"errors"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrOrderIDAlreadyAssigned is returned when the ledger tries to assign an id twice.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
	// ErrOrderAlreadyDelivered signals an idempotent repeat delivery. Callers
	// treat it as a successful no-op, not a failure.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// Line is an immutable snapshot of one selected ingredient. It records the
// ingredient's identity, selection key, and display name as they were at
// placement time, so later catalog edits and deletions never rewrite order
// history.
type Line struct {
	ingredientID kernel.UUID
	key          string
	name         string

	guard guard.ConstructorGuard
}

// NewLine creates a line snapshot for a resolved ingredient selection.
func NewLine(ingredientID kernel.UUID, key, name string) (Line, error) {
	if err := ingredientID.Validate(); err != nil {
		return Line{}, err
	}
	if key == "" {
		return Line{}, errs.NewValueIsRequiredError("key")
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}

	return Line{
		ingredientID: ingredientID,
		key:          key,
		name:         name,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// IngredientID returns the identity of the ingredient at placement time.
func (l Line) IngredientID() kernel.UUID {
	return l.ingredientID
}

// Key returns the selection key snapshot ("saute_onions").
func (l Line) Key() string {
	return l.key
}

// Name returns the display name snapshot ("Saute onions").
func (l Line) Name() string {
	return l.name
}

// Order represents one placed order in the ledger. It is the aggregate root
// of the fulfillment workflow, carrying the status state machine and the
// collection/delivery bookkeeping.
//
// Invariants:
//   - Owned by exactly one user, referenced by id (never by display name)
//   - Status only moves forward through the Status machine
//   - Lines are fixed at placement; an empty line set is valid
//   - Ledger id is assigned exactly once, by the store, on append
//
// Sequence is the owner's Nth order, derived at placement from their count of
// prior delivered orders. It exists for display only and carries no identity.
type Order struct {
	id           int64
	userID       kernel.UUID
	sequence     int
	lines        []Line
	instructions string
	status       Status
	createdAt    time.Time
	collectedBy  *kernel.UUID
	collectedAt  *time.Time
	deliveredAt  *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order in Pending status. The ledger id is
// unset until the store appends the order and calls AssignID.
func NewOrder(userID kernel.UUID, sequence int, lines []Line, instructions string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setSequence(sequence),
		o.setLines(lines),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.instructions = instructions
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including the
// assigned ledger id and any collection and delivery bookkeeping.
func RestoreOrder(
	id int64,
	userID kernel.UUID,
	sequence int,
	lines []Line,
	instructions string,
	status Status,
	createdAt time.Time,
	collectedBy *kernel.UUID,
	collectedAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(userID, sequence, lines, instructions, createdAt)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.collectedBy = collectedBy
	o.collectedAt = collectedAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order was constructed properly. Call when
// reconstructing orders from persistence or accepting them across
// package boundaries.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the ledger-assigned id, or 0 for an order not yet appended.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the ledger-assigned id on a freshly appended order.
// The id is assigned exactly once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// UserID returns the owning user's identity.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Sequence returns the owner's order number (their Nth order). Display only.
func (o *Order) Sequence() int {
	return o.sequence
}

// Lines returns the immutable ingredient snapshots selected at placement.
func (o *Order) Lines() []Line {
	return o.lines
}

// Instructions returns the free-text preparation instructions. May be empty.
func (o *Order) Instructions() string {
	return o.instructions
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CollectedBy returns the courier who collected the order, or nil.
func (o *Order) CollectedBy() *kernel.UUID {
	return o.collectedBy
}

// CollectedAt returns the collection timestamp, or nil.
func (o *Order) CollectedAt() *time.Time {
	return o.collectedAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsActive reports whether the order still blocks its owner from placing
// another one. Every status short of Delivered is active.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// IsDelivered reports whether the order reached its final status.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// StartPreparing moves a Pending order to Preparing. On orders already at or
// beyond Preparing it is an idempotent no-op.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order to Ready. Allowed from Pending (the kitchen skip
// path), Preparing, and Ready itself; refused once the order is on the
// delivery leg.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Collect hands the order to a courier: Ready -> OutForDelivery, recording
// the courier's identity and the collection time. The courier's delivery
// capability is checked by the lifecycle engine, not here.
func (o *Order) Collect(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Collect()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.collectedBy = &courierID
	o.collectedAt = &at
	return nil
}

// Deliver completes the order, recording the delivery time. Returns
// ErrOrderAlreadyDelivered on a delivered order so callers can treat repeat
// delivery as an idempotent no-op rather than reopening eligibility twice.
func (o *Order) Deliver(at time.Time) error {
	if o.status == Delivered {
		return ErrOrderAlreadyDelivered
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidError("sequence")
	}
	o.sequence = sequence
	return nil
}

func (o *Order) setLines(lines []Line) error {
	for _, line := range lines {
		if err := line.guard.Validate(ErrOrderIsNotConstructed); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

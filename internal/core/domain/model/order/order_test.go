package order_test

import (
	"testing"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines(t *testing.T) []order.Line {
	t.Helper()

	tomatoes, err := order.NewLine(kernel.NewUUID(), "tomatoes", "Tomatoes")
	require.NoError(t, err)
	cheese, err := order.NewLine(kernel.NewUUID(), "cheese", "Cheese")
	require.NoError(t, err)

	return []order.Line{tomatoes, cheese}
}

func TestNewLine(t *testing.T) {
	t.Run("creates valid line", func(t *testing.T) {
		id := kernel.NewUUID()

		line, err := order.NewLine(id, "saute_onions", "Saute onions")

		require.NoError(t, err)
		assert.True(t, line.IngredientID().IsEqual(id))
		assert.Equal(t, "saute_onions", line.Key())
		assert.Equal(t, "Saute onions", line.Name())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, "cheese", "Cheese")
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), "", "Cheese")
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), "cheese", "")
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("creates pending order without id", func(t *testing.T) {
		userID := kernel.NewUUID()
		lines := testLines(t)

		o, err := order.NewOrder(userID, 1, lines, "no onions please", now)

		require.NoError(t, err)
		assert.EqualValues(t, 0, o.ID())
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, 1, o.Sequence())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, "no onions please", o.Instructions())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.True(t, o.IsActive())
		assert.False(t, o.IsDelivered())
		assert.Nil(t, o.CollectedBy())
		assert.Nil(t, o.DeliveredAt())
		assert.NoError(t, o.Validate())
	})

	t.Run("empty selection is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 1, nil, "", now)

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, 1, nil, "", now)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), 0, nil, "", now)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), 1, nil, "", time.Time{})
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), 1, []order.Line{{}}, "", now)
		require.Error(t, err)
	})
}

func TestOrder_AssignID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("assigns once", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 1, nil, "", now)
		require.NoError(t, err)

		require.NoError(t, o.AssignID(7))
		assert.EqualValues(t, 7, o.ID())

		require.ErrorIs(t, o.AssignID(8), order.ErrOrderIDAlreadyAssigned)
		assert.EqualValues(t, 7, o.ID())
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 1, nil, "", now)
		require.NoError(t, err)

		require.Error(t, o.AssignID(0))
		require.Error(t, o.AssignID(-1))
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("restores full state", func(t *testing.T) {
		userID := kernel.NewUUID()
		courierID := kernel.NewUUID()
		collectedAt := now.Add(10 * time.Minute)
		deliveredAt := now.Add(20 * time.Minute)

		o, err := order.RestoreOrder(
			3, userID, 2, testLines(t), "extra ketchup",
			order.Delivered, now, &courierID, &collectedAt, &deliveredAt,
		)

		require.NoError(t, err)
		assert.EqualValues(t, 3, o.ID())
		assert.Equal(t, 2, o.Sequence())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.CollectedBy().IsEqual(courierID))
		assert.Equal(t, collectedAt, *o.CollectedAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		assert.False(t, o.IsActive())
	})

	t.Run("rejects missing id and unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(0, kernel.NewUUID(), 1, nil, "", order.Pending, now, nil, nil, nil)
		require.Error(t, err)

		_, err = order.RestoreOrder(1, kernel.NewUUID(), 1, nil, "", order.Unknown, now, nil, nil, nil)
		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	now := time.Now().UTC()

	newPending := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), 1, testLines(t), "", now)
		require.NoError(t, err)
		return o
	}

	t.Run("full walk to delivered", func(t *testing.T) {
		o := newPending(t)
		courierID := kernel.NewUUID()
		collectedAt := now.Add(5 * time.Minute)
		deliveredAt := now.Add(15 * time.Minute)

		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.Collect(courierID, collectedAt))
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.CollectedBy().IsEqual(courierID))
		assert.Equal(t, collectedAt, *o.CollectedAt())

		require.NoError(t, o.Deliver(deliveredAt))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		assert.True(t, o.IsDelivered())
	})

	t.Run("kitchen skip pending to ready", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("start preparing is idempotent", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.MarkReady())
		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("cannot collect before ready", func(t *testing.T) {
		o := newPending(t)

		require.Error(t, o.Collect(kernel.NewUUID(), now))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.CollectedBy())
	})

	t.Run("collect requires a valid courier id", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkReady())

		require.Error(t, o.Collect(kernel.UUID{}, now))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("second deliver is flagged as already delivered", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Deliver(now))

		firstDeliveredAt := *o.DeliveredAt()

		err := o.Deliver(now.Add(time.Minute))
		require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
		assert.Equal(t, firstDeliveredAt, *o.DeliveredAt())
	})

	t.Run("delivered order cannot be marked ready", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Deliver(now))

		require.Error(t, o.MarkReady())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

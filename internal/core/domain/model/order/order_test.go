package order_test

import (
	"testing"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

func mustLine(t *testing.T, name string, qty int, price string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), name, qty, mustMoney(t, price))
	require.NoError(t, err)
	return line
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	lines := []order.Line{
		mustLine(t, "Bouteille 1.0L", 3, "2.50"),
		mustLine(t, "Pack 6x0.5L", 1, "6.90"),
	}

	ord, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomDispatchCode(),
		lines,
		mustDistance(t, 25),
		mustMoney(t, "30.00"),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return ord
}

func TestNewOrder(t *testing.T) {
	t.Run("computes the frozen total", func(t *testing.T) {
		ord := newPlacedOrder(t)

		// 3×2.50 + 6.90 = 14.40, plus 30.00 fee
		assert.Equal(t, "14.40", ord.Subtotal().String())
		assert.Equal(t, "44.40", ord.Total().String())
		assert.Equal(t, order.Placed, ord.Status())
		assert.Nil(t, ord.CompletedAt())
		assert.True(t, ord.IsOpen())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewRandomDispatchCode(),
			nil,
			mustDistance(t, 5),
			mustMoney(t, "20.00"),
			time.Now().UTC(),
		)
		require.ErrorIs(t, err, order.ErrLinesAreRequired)
	})

	t.Run("invalid code is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.DispatchCode{},
			[]order.Line{mustLine(t, "Bouteille 1.0L", 1, "2.50")},
			mustDistance(t, 5),
			mustMoney(t, "20.00"),
			time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("zero timestamp is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewRandomDispatchCode(),
			[]order.Line{mustLine(t, "Bouteille 1.0L", 1, "2.50")},
			mustDistance(t, 5),
			mustMoney(t, "20.00"),
			time.Time{},
		)
		require.Error(t, err)
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Bouteille 1.0L", 1, "2.50")}
		ord, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewRandomDispatchCode(),
			lines,
			mustDistance(t, 5),
			mustMoney(t, "20.00"),
			time.Now().UTC(),
		)
		require.NoError(t, err)

		lines[0] = order.Line{}
		require.NoError(t, ord.Lines()[0].Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		ord := newPlacedOrder(t)
		totalBefore := ord.Total()

		require.NoError(t, ord.Dispatch())
		assert.Equal(t, order.Dispatched, ord.Status())
		assert.True(t, ord.IsOpen())

		deliveredAt := time.Now().UTC()
		require.NoError(t, ord.Deliver(deliveredAt))
		assert.Equal(t, order.Delivered, ord.Status())
		require.NotNil(t, ord.CompletedAt())
		assert.Equal(t, deliveredAt, *ord.CompletedAt())
		assert.False(t, ord.IsOpen())

		// total never recomputed
		assert.True(t, ord.Total().IsEqual(totalBefore))
	})

	t.Run("deliver before dispatch is refused", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.ErrorIs(t, ord.Deliver(time.Now().UTC()), order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, ord.Status())
		assert.Nil(t, ord.CompletedAt())
	})

	t.Run("cancel from placed", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Cancel(time.Now().UTC()))
		assert.Equal(t, order.Cancelled, ord.Status())
		require.NotNil(t, ord.CompletedAt())
	})

	t.Run("cancel from dispatched", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Dispatch())
		require.NoError(t, ord.Cancel(time.Now().UTC()))
		assert.Equal(t, order.Cancelled, ord.Status())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Dispatch())
		require.NoError(t, ord.Deliver(time.Now().UTC()))

		require.ErrorIs(t, ord.Cancel(time.Now().UTC()), order.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, ord.Status())
	})

	t.Run("double deliver is refused", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Dispatch())
		require.NoError(t, ord.Deliver(time.Now().UTC()))
		require.ErrorIs(t, ord.Deliver(time.Now().UTC()), order.ErrInvalidTransition)
	})

	t.Run("double dispatch is refused", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Dispatch())
		require.ErrorIs(t, ord.Dispatch(), order.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips an open order", func(t *testing.T) {
		ord := newPlacedOrder(t)
		require.NoError(t, ord.Dispatch())

		restored, err := order.RestoreOrder(
			ord.ID(), ord.Code(), ord.Lines(), ord.Distance(), ord.Fee(), ord.Total(),
			ord.Status(), ord.CreatedAt(), ord.CompletedAt(),
		)
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, restored.Status())
		assert.True(t, restored.Total().IsEqual(ord.Total()))
		assert.True(t, restored.Code().IsEqual(ord.Code()))
	})

	t.Run("keeps the persisted total even if prices changed", func(t *testing.T) {
		ord := newPlacedOrder(t)
		persistedTotal := mustMoney(t, "99.00")

		restored, err := order.RestoreOrder(
			ord.ID(), ord.Code(), ord.Lines(), ord.Distance(), ord.Fee(), persistedTotal,
			order.Placed, ord.CreatedAt(), nil,
		)
		require.NoError(t, err)
		assert.Equal(t, "99.00", restored.Total().String())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		ord := newPlacedOrder(t)
		_, err := order.RestoreOrder(
			ord.ID(), ord.Code(), ord.Lines(), ord.Distance(), ord.Fee(), ord.Total(),
			order.Unknown, ord.CreatedAt(), nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestNewLine(t *testing.T) {
	t.Run("zero quantity is rejected", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Bouteille 1.0L", 0, mustMoney(t, "2.50"))
		require.ErrorIs(t, err, order.ErrQuantityIsInvalid)
	})

	t.Run("line total", func(t *testing.T) {
		line := mustLine(t, "Bouteille 1.0L", 4, "2.50")
		assert.Equal(t, "10.00", line.Total().String())
	})
}

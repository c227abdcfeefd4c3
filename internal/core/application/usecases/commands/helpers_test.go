package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/tariff"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()

	money, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return money
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()

	distance, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return distance
}

func mustProduct(t *testing.T, name string, price string, stock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), name, mustMoney(t, price), stock)
	require.NoError(t, err)
	return p
}

func defaultFeeTable(t *testing.T) tariff.FeeTable {
	t.Helper()
	return tariff.DefaultFeeTable()
}

func placedOrder(t *testing.T, p *product.Product, quantity int, distanceKm float64, fee string) *order.Order {
	t.Helper()

	line, err := order.NewLine(p.ID(), p.Name(), quantity, p.Price())
	require.NoError(t, err)

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomDispatchCode(),
		[]order.Line{line},
		mustDistance(t, distanceKm),
		mustMoney(t, fee),
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return placed
}

func dispatchedOrder(t *testing.T, p *product.Product, quantity int, distanceKm float64, fee string) *order.Order {
	t.Helper()

	placed := placedOrder(t, p, quantity, distanceKm, fee)
	require.NoError(t, placed.Dispatch())
	return placed
}

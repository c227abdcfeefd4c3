// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"minishop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RevenueRepoFactory provides access to the revenue ledger within a transaction.
	RevenueRepoFactory interface {
		RevenueRepository() ports.RevenueRepository
	}

	// TariffRepoFactory provides access to the fee table repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new catalog unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// TariffUoW manages transactions for fee table operations.
	TariffUoW interface {
		TxManager
		TariffRepoFactory
	}

	// TariffUoWFactory creates new fee table unit of work instances.
	TariffUoWFactory interface {
		Create() TariffUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages the order placement transaction. Placement reads
	// the fee table, locks and decrements product stock, and inserts the
	// order, so it spans three repositories.
	PlaceOrderUoW interface {
		TxManager
		TariffRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates new placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// DeliveryUoW manages the delivery confirmation transaction. The status
	// transition and the revenue ledger append share one transaction so the
	// ledger gets exactly one entry per delivered order.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		RevenueRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CancelUoW manages cancellation transactions. Cancelling returns held
	// stock to the shelf, so the order and product repositories share one
	// transaction.
	CancelUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// CancelUoWFactory creates new cancellation unit of work instances.
	CancelUoWFactory interface {
		Create() CancelUoW
	}
)

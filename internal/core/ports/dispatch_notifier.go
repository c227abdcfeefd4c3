package ports

import (
	"context"

	"minishop/internal/core/domain/model/kernel"
)

// DispatchItem is one position of a dispatch note.
type DispatchItem struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// DispatchNote is the payload handed to the courier channel when an order
// goes out for delivery. It deliberately carries no customer identity; the
// dispatch code is the only correlation handle.
type DispatchNote struct {
	Code  kernel.DispatchCode
	Items []DispatchItem
	Fee   kernel.Money
	Total kernel.Money
}

// DispatchNotifier pushes dispatch notes to the courier channel.
// Notify is called outside of any database transaction; a delivery failure
// leaves the order in its prior state so the dispatch can be retried.
type DispatchNotifier interface {
	Notify(ctx context.Context, note DispatchNote) error
}

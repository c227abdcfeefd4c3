package commands

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired     = errors.New("at least one order item is required")
	ErrItemQuantityInvalid  = errors.New("item quantity must be greater than 0")
	ErrItemProductIDInvalid = errors.New("item product id is invalid")
)

// OrderItem is one requested cart position: a product and a quantity.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a request to place a new cash order.
// The customer supplies the cart content and the delivery distance; the fee
// and the frozen total are resolved by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	distance, _ := kernel.NewDistance(12.5)
//	cmd, err := NewPlaceOrderCommand(orderID, items, distance)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	items    []OrderItem
	distance kernel.Distance

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the cart is not empty, every item
// references a constructed product ID with a positive quantity, and the
// distance was properly constructed.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	items []OrderItem,
	distance kernel.Distance,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
		command.setDistance(distance),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the requested cart positions.
func (c PlaceOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Distance returns the delivery distance supplied by the customer.
func (c PlaceOrderCommand) Distance() kernel.Distance {
	return c.distance
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return ErrItemProductIDInvalid
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityInvalid
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}

	c.distance = distance
	return nil
}

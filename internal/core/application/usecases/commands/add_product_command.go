package commands

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrProductStockInvalid   = errors.New("product stock must not be negative")
)

// AddProductCommand represents a request to add a product to the catalog.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	stock     int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a new catalog product.
// Validates that the product ID is valid, the name is not empty, the price
// is positive, and the initial stock is not negative.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	stock int,
) (AddProductCommand, error) {
	command := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return AddProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c AddProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial shelf quantity.
func (c AddProductCommand) Stock() int {
	return c.stock
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrProductStockInvalid
	}

	c.stock = stock
	return nil
}

package product

import (
	"errors"
	"fmt"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/errs"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPriceIsRequired is returned when attempting to create a product with a zero or missing price.
	ErrPriceIsRequired = errs.NewValueIsRequiredError("price")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is the unwrap target for InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports the first cart line that cannot be covered
// by the units on hand. It is user-facing: the shop suggests a reduced
// quantity based on Available.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the aggregate holding the authoritative unit count for one
// catalogue item. Stock only changes through Reserve and Restore, which keep
// the count non-negative at all times.
//
// Business rules:
//   - Price is fixed per unit and strictly positive
//   - Stock never goes below zero; Reserve is refused instead
//   - The price recorded on an order is the price at reservation time;
//     later price changes never touch open orders
//
// Example:
//
//	price, _ := kernel.MoneyFromString("2.50")
//	p, err := product.NewProduct(kernel.NewUUID(), "Bouteille 1.0L", price, 50)
//	if err != nil {
//	    // handle validation error
//	}
//	if err := p.Reserve(3); err != nil {
//	    // insufficient stock
//	}
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the catalogue label, unique per shop
	name string
	// price is the per-unit price in effect right now
	price kernel.Money
	// stock is the number of units on hand, minus active holds
	stock int

	// isConstructed ensures the product was created via NewProduct or RestoreProduct
	isConstructed bool
}

// NewProduct creates a Product with validation. The initial stock may be
// zero (item listed before the first delivery arrives) but never negative.
func NewProduct(id kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence. The same
// invariants apply as in NewProduct.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, price, stock)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalogue label.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current per-unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the units currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// Reserve takes qty units out of stock. Refused with InsufficientStockError
// when fewer than qty units are on hand; the count is then left untouched.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	if p.stock < qty {
		return &InsufficientStockError{
			ProductName: p.name,
			Requested:   qty,
			Available:   p.stock,
		}
	}

	p.stock -= qty
	return nil
}

// CanReserve reports whether qty units could be taken right now without
// mutating the count. Used for the all-or-nothing check across a cart.
func (p *Product) CanReserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	if p.stock < qty {
		return &InsufficientStockError{
			ProductName: p.name,
			Requested:   qty,
			Available:   p.stock,
		}
	}

	return nil
}

// Restore puts qty units back, e.g. when a reservation is released after a
// cancelled order.
func (p *Product) Restore(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	p.stock += qty
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return ErrPriceIsRequired
	}

	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock must not be negative")
	}

	p.stock = stock
	return nil
}

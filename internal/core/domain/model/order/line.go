package order

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/errs"
	"minishop/internal/pkg/guard"
)

// Domain errors for order lines.
var (
	// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
	// ErrQuantityIsInvalid is returned for non-positive line quantities.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// Line is one cart position frozen into the order: product, quantity and the
// unit price in effect when the order was placed. Later catalogue price
// changes never touch it.
type Line struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line.
func NewLine(productID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Name returns the product name at order time.
func (l Line) Name() string {
	return l.name
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price at order time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns unit price × quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}

	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	l.unitPrice = unitPrice
	return nil
}

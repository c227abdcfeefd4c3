package order

import (
	"errors"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrLinesAreRequired is returned when attempting to create an order with an empty cart.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order lines")
)

// Order is the aggregate root for one anonymous cash order. It owns the
// lifecycle from placement through dispatch to delivery or cancellation.
//
// Invariants:
//   - The dispatch code carries no customer-identifying data
//   - Total = Σ(line unit price × quantity) + delivery fee, fixed at
//     creation and never recomputed
//   - Status transitions follow the Placed → Dispatched → {Delivered,
//     Cancelled} machine; terminal states are immutable
//   - CompletedAt is set exactly when a terminal state is reached
//
// While the order is Placed or Dispatched its line quantities are held
// against product stock; Cancelled releases the hold, Delivered keeps the
// decrement and produces the revenue entry.
type Order struct {
	// id is the internal unique identifier for the order
	id kernel.UUID

	// code is the anonymous identifier shown to the courier channel
	code kernel.DispatchCode

	// lines are the cart positions frozen at placement time
	lines []Line

	// distance is the customer-supplied delivery distance
	distance kernel.Distance

	// fee is the delivery fee resolved at placement time
	fee kernel.Money

	// total is subtotal + fee, fixed at placement time
	total kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp
	createdAt time.Time

	// completedAt is set when a terminal state is reached (nil before that)
	completedAt *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in the Placed state. The caller has already
// resolved the fee and reserved stock for every line; the constructor only
// freezes the amounts.
//
// Example:
//
//	ord, err := order.NewOrder(kernel.NewUUID(), code, lines, distance, fee, time.Now().UTC())
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	code kernel.DispatchCode,
	lines []Line,
	distance kernel.Distance,
	fee kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setLines(lines),
		o.setDistance(distance),
		o.setFee(fee),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = o.Subtotal().Add(fee)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// frozen total and completion timestamp.
func RestoreOrder(
	id kernel.UUID,
	code kernel.DispatchCode,
	lines []Line,
	distance kernel.Distance,
	fee kernel.Money,
	total kernel.Money,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, code, lines, distance, fee, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = total.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.total = total
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the internal order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the anonymous dispatch code.
func (o *Order) Code() kernel.DispatchCode {
	return o.code
}

// Lines returns a copy of the frozen cart positions.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Distance returns the customer-supplied delivery distance.
func (o *Order) Distance() kernel.Distance {
	return o.distance
}

// Fee returns the delivery fee frozen at placement time.
func (o *Order) Fee() kernel.Money {
	return o.fee
}

// Subtotal returns the sum of all line totals (without the delivery fee).
func (o *Order) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// Total returns the amount of cash the courier collects: subtotal + fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the terminal-state timestamp, or nil while the order
// is still open.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsOpen reports whether the order still holds a stock reservation.
func (o *Order) IsOpen() bool {
	return !o.status.IsTerminal()
}

// Dispatch marks the order as handed to the courier channel.
// Valid only from Placed.
func (o *Order) Dispatch() error {
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Deliver marks the order as delivered and stamps the completion time.
// Valid only from Dispatched. The caller appends the revenue entry in the
// same transaction.
func (o *Order) Deliver(at time.Time) error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = next
	o.completedAt = &at
	return nil
}

// Cancel marks the order as cancelled and stamps the completion time.
// Valid from Placed and Dispatched. The caller releases the stock
// reservation in the same transaction.
func (o *Order) Cancel(at time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	o.completedAt = &at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setCode(code kernel.DispatchCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	o.code = code
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}

	o.distance = distance
	return nil
}

func (o *Order) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	o.fee = fee
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	o.createdAt = createdAt
	return nil
}

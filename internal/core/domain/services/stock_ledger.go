package services

import (
	"errors"
	"fmt"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/product"
)

// ErrUnknownProduct is returned when a requested item references a product
// that is not present in the catalog slice given to Reserve.
var ErrUnknownProduct = errors.New("unknown product")

// ErrReservationNotHeld is returned when committing a reservation that is
// no longer in the held state.
var ErrReservationNotHeld = errors.New("reservation is not held")

// UnknownProductError provides detail about a reservation request referencing
// a product missing from the catalog.
type UnknownProductError struct {
	ProductID kernel.UUID
}

// NewUnknownProductError creates a new UnknownProductError for the given product ID.
func NewUnknownProductError(productID kernel.UUID) *UnknownProductError {
	return &UnknownProductError{ProductID: productID}
}

// Error implements the error interface.
func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownProduct, e.ProductID)
}

// Unwrap enables errors.Is checks against ErrUnknownProduct.
func (e *UnknownProductError) Unwrap() error {
	return ErrUnknownProduct
}

// ReservationItem is one requested position of a stock reservation.
type ReservationItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// StockLedger is a domain service responsible for atomic multi-product stock
// reservation. A reservation either holds every requested item or holds
// nothing: the first position that cannot be satisfied aborts the whole
// request before any stock is touched.
//
// Business rules:
//   - Every requested product must exist in the given catalog slice
//   - All positions are checked before any stock is decremented
//   - Held stock is returned to the shelf on release, exactly once
//   - Committed reservations can no longer be released
type StockLedger struct{}

// NewStockLedger creates a new StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// Reserve holds stock for every requested item against the given products.
// On success every product's stock is decremented and a Reservation token is
// returned. On any failure no product is modified.
//
// Returns ErrUnknownProduct when an item references a product that is not in
// the slice, and product.ErrInsufficientStock when a position cannot be
// covered by the available quantity.
func (s StockLedger) Reserve(products []*product.Product, items []ReservationItem) (*Reservation, error) {
	if len(items) == 0 {
		return nil, errors.New("reservation items are required")
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	type hold struct {
		product  *product.Product
		quantity int
	}

	holds := make([]hold, 0, len(items))

	// First pass is read only so a late failure cannot leave partial holds.
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, NewUnknownProductError(item.ProductID)
		}

		if err := p.CanReserve(item.Quantity); err != nil {
			return nil, err
		}

		holds = append(holds, hold{product: p, quantity: item.Quantity})
	}

	for _, h := range holds {
		if err := h.product.Reserve(h.quantity); err != nil {
			return nil, err
		}
	}

	reservation := &Reservation{
		token: kernel.NewUUID(),
		state: reservationHeld,
	}
	for _, h := range holds {
		reservation.holds = append(reservation.holds, reservationHold{
			product:  h.product,
			quantity: h.quantity,
		})
	}

	return reservation, nil
}

type reservationState int

const (
	reservationHeld reservationState = iota
	reservationReleased
	reservationCommitted
)

type reservationHold struct {
	product  *product.Product
	quantity int
}

// Reservation represents stock held for an order in progress. It is created
// exclusively by StockLedger.Reserve and transitions to exactly one of the
// released or committed states.
type Reservation struct {
	token kernel.UUID
	state reservationState
	holds []reservationHold
}

// Token returns the opaque identifier of the reservation.
func (r *Reservation) Token() kernel.UUID {
	return r.token
}

// IsHeld reports whether the reservation still holds stock.
func (r *Reservation) IsHeld() bool {
	return r.state == reservationHeld
}

// Release returns held stock to the shelf. Releasing an already released
// or committed reservation is a no-op, so duplicate cancellation signals
// are tolerated. Committed stock stays sold.
func (r *Reservation) Release() error {
	if r.state != reservationHeld {
		return nil
	}

	for _, h := range r.holds {
		if err := h.product.Restore(h.quantity); err != nil {
			return err
		}
	}

	r.state = reservationReleased
	return nil
}

// Commit finalizes the reservation: the held stock is sold and can no longer
// be returned through Release.
func (r *Reservation) Commit() error {
	if r.state != reservationHeld {
		return ErrReservationNotHeld
	}

	r.state = reservationCommitted
	return nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/services"
	"minishop/internal/core/ports"
)

// ErrCodeGenerationFailed is returned when a unique dispatch code could not
// be produced within the collision retry limit.
var ErrCodeGenerationFailed = errors.New("failed to generate a unique dispatch code")

const maxCodeAttempts = 5

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the delivery fee before any stock is touched, holds stock
// atomically for the whole cart, and freezes the order total at placement.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, tariff.ErrOutOfRange) {
//	    // destination beyond the service area, nothing was reserved
//	}
type PlaceOrderCommandHandler struct {
	uowFactory  PlaceOrderUoWFactory
	stockLedger services.StockLedger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		stockLedger: services.NewStockLedger(),
	}
}

// Handle processes the order placement command.
//
// The fee is resolved first so an out of range destination fails before any
// stock is touched. Stock for the whole cart is then held all or nothing,
// a collision checked dispatch code is generated, and the order is persisted
// with its total frozen. Everything happens in a single transaction.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	feeTable, err := uow.TariffRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	fee, err := feeTable.Resolve(cmd.Distance())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()

	ids := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]services.ReservationItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		items = append(items, services.ReservationItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	reservation, err := h.stockLedger.Reserve(products, items)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	code, err := h.generateCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	lines, err := h.buildLines(cmd, products)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), code, lines, cmd.Distance(), fee, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = reservation.Commit(); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// generateCode draws random dispatch codes until one is free of collisions.
func (h *PlaceOrderCommandHandler) generateCode(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (kernel.DispatchCode, error) {
	for range maxCodeAttempts {
		code := kernel.NewRandomDispatchCode()

		exists, err := orderRepo.CodeExists(ctx, code)
		if err != nil {
			return kernel.DispatchCode{}, err
		}

		if !exists {
			return code, nil
		}
	}

	return kernel.DispatchCode{}, ErrCodeGenerationFailed
}

func (h *PlaceOrderCommandHandler) buildLines(
	cmd PlaceOrderCommand,
	products []*product.Product,
) ([]order.Line, error) {
	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, services.NewUnknownProductError(item.ProductID)
		}

		line, err := order.NewLine(p.ID(), p.Name(), item.Quantity, p.Price())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

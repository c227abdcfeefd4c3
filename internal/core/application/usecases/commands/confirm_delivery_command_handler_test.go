package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minishop/internal/core/application/usecases/commands"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/revenue"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	bread := mustProduct(t, "bread", "2.50", 10)
	dispatched := dispatchedOrder(t, bread, 3, 25, "30.00")
	cmd, err := commands.NewConfirmDeliveryCommand(dispatched.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	revenueRepo := new(MockRevenueRepository)
	uow := new(MockUoW)

	var entry revenue.Entry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", ctx, dispatched.Code()).Return(dispatched, nil).Once(),
		orderRepo.On("Update", ctx, dispatched).Return(nil).Once(),
		uow.On("RevenueRepository").Return(revenueRepo).Once(),
		revenueRepo.On("Add", ctx, mock.AnythingOfType("revenue.Entry")).
			Run(func(args mock.Arguments) {
				entry = args.Get(1).(revenue.Entry)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, dispatched.Status())
	require.NotNil(t, dispatched.CompletedAt())
	assert.True(t, entry.OrderCode().IsEqual(dispatched.Code()))
	assert.True(t, entry.Amount().IsEqual(dispatched.Total()))
	assert.Equal(t, *dispatched.CompletedAt(), entry.RecordedAt())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	revenueRepo.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_SecondConfirmationRefused(t *testing.T) {
	ctx := t.Context()

	bread := mustProduct(t, "bread", "2.50", 10)
	dispatched := dispatchedOrder(t, bread, 1, 10, "20.00")
	require.NoError(t, dispatched.Deliver(dispatched.CreatedAt().Add(1)))

	cmd, err := commands.NewConfirmDeliveryCommand(dispatched.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	revenueRepo := new(MockRevenueRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", ctx, dispatched.Code()).Return(dispatched, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	// No second ledger entry for the same order.
	revenueRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmDeliveryCommandHandler_Handle_PlacedOrderRefused(t *testing.T) {
	ctx := t.Context()

	bread := mustProduct(t, "bread", "2.50", 10)
	placed := placedOrder(t, bread, 1, 10, "20.00")

	cmd, err := commands.NewConfirmDeliveryCommand(placed.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", ctx, placed.Code()).Return(placed, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Placed, placed.Status())
}

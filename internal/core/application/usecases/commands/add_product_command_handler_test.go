package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minishop/internal/core/application/usecases/commands"
	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/product"
)

func TestNewAddProductCommand(t *testing.T) {
	cmd, err := commands.NewAddProductCommand(kernel.NewUUID(), "bread", mustMoney(t, "2.50"), 10)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "bread", cmd.Name())
	assert.Equal(t, 10, cmd.Stock())
}

func TestNewAddProductCommandValidation(t *testing.T) {
	price := mustMoney(t, "2.50")

	t.Run("empty name is refused", func(t *testing.T) {
		_, err := commands.NewAddProductCommand(kernel.NewUUID(), "", price, 10)
		assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
	})

	t.Run("negative stock is refused", func(t *testing.T) {
		_, err := commands.NewAddProductCommand(kernel.NewUUID(), "bread", price, -1)
		assert.ErrorIs(t, err, commands.ErrProductStockInvalid)
	})

	t.Run("unconstructed price is refused", func(t *testing.T) {
		_, err := commands.NewAddProductCommand(kernel.NewUUID(), "bread", kernel.Money{}, 10)
		assert.Error(t, err)
	})
}

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAddProductCommand(kernel.NewUUID(), "bread", mustMoney(t, "2.50"), 10)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	var added *product.Product
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*product.Product)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "bread", added.Name())
	assert.Equal(t, "2.50", added.Price().String())
	assert.Equal(t, 10, added.Stock())

	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

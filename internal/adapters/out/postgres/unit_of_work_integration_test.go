package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"minishop/internal/adapters/out/postgres"
	"minishop/internal/adapters/out/postgres/orderrepo"
	"minishop/internal/adapters/out/postgres/productrepo"
	"minishop/internal/adapters/out/postgres/revenuerepo"
	"minishop/internal/adapters/out/postgres/tariffrepo"
	"minishop/internal/core/application/usecases/commands"
	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/core/domain/model/tariff"
)

type funcPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f funcPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (s *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&revenuerepo.RevenueEntryDTO{},
		&tariffrepo.FeeTierDTO{},
	)
	s.Require().NoError(err)

	s.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (s *UnitOfWorkTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	for _, table := range []string{"order_lines", "orders", "revenue_entries", "products", "fee_tiers"} {
		s.Require().NoError(s.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (s *UnitOfWorkTestSuite) addProduct(name string, price string, stock int) *product.Product {
	money, err := kernel.MoneyFromString(price)
	s.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, money, stock)
	s.Require().NoError(err)

	ctx := context.Background()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.ProductRepository().Add(ctx, p))
	s.Require().NoError(uow.Commit(ctx))

	return p
}

func (s *UnitOfWorkTestSuite) seedDefaultFees() {
	ctx := context.Background()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.TariffRepository().Save(ctx, tariff.DefaultFeeTable()))
	s.Require().NoError(uow.Commit(ctx))
}

func (s *UnitOfWorkTestSuite) TestProductRoundTrip() {
	ctx := context.Background()
	bread := s.addProduct("bread", "2.50", 10)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ProductRepository().Get(ctx, bread.ID())
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	s.Equal("bread", loaded.Name())
	s.Equal("2.50", loaded.Price().String())
	s.Equal(10, loaded.Stock())
}

func (s *UnitOfWorkTestSuite) TestTariffRoundTrip() {
	ctx := context.Background()
	s.seedDefaultFees()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.TariffRepository().Get(ctx)
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	s.Len(loaded.Tiers(), 3)
	s.InDelta(50.0, loaded.MaxDistanceKm(), 0.0001)

	distance, err := kernel.NewDistance(25)
	s.Require().NoError(err)
	fee, err := loaded.Resolve(distance)
	s.Require().NoError(err)
	s.Equal("30.00", fee.String())
}

func (s *UnitOfWorkTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()

	money, err := kernel.MoneyFromString("1.00")
	s.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), "discarded", money, 1)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.ProductRepository().Add(ctx, p))
	s.Require().NoError(uow.Rollback(ctx))

	check := s.factory.Create()
	s.Require().NoError(check.Begin(ctx))
	_, err = check.ProductRepository().Get(ctx, p.ID())
	s.Require().Error(err)
	s.Require().NoError(check.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestOrderLifecycleWithRevenue() {
	ctx := context.Background()
	s.seedDefaultFees()
	bread := s.addProduct("bread", "2.50", 10)

	handler := commands.NewPlaceOrderCommandHandler(funcPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return s.factory.Create()
	}))

	distance, err := kernel.NewDistance(25)
	s.Require().NoError(err)
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		[]commands.OrderItem{{ProductID: bread.ID(), Quantity: 3}},
		distance,
	)
	s.Require().NoError(err)

	placed, err := handler.Handle(ctx, cmd)
	s.Require().NoError(err)
	s.Equal("37.50", placed.Total().String())

	// Stock was decremented inside the placement transaction.
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	shelf, err := uow.ProductRepository().Get(ctx, bread.ID())
	s.Require().NoError(err)
	s.Equal(7, shelf.Stock())

	// Dispatch and deliver, appending the ledger entry in the same transaction.
	loaded, err := uow.OrderRepository().GetByCode(ctx, placed.Code())
	s.Require().NoError(err)
	s.Require().NoError(loaded.Dispatch())
	deliveredAt := time.Now().UTC()
	s.Require().NoError(loaded.Deliver(deliveredAt))
	s.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	entry, err := revenue.NewEntry(loaded.Code(), loaded.Total(), deliveredAt)
	s.Require().NoError(err)
	s.Require().NoError(uow.RevenueRepository().Add(ctx, entry))
	s.Require().NoError(uow.Commit(ctx))

	// Snapshot the ledger.
	check := s.factory.Create()
	s.Require().NoError(check.Begin(ctx))
	entries, err := check.RevenueRepository().GetRange(ctx, deliveredAt.Add(-time.Hour), deliveredAt.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(check.Rollback(ctx))

	s.Require().Len(entries, 1)
	s.True(entries[0].OrderCode().IsEqual(placed.Code()))
	s.Equal("37.50", entries[0].Amount().String())

	final, err := s.reloadOrder(placed.Code())
	s.Require().NoError(err)
	s.Equal(order.Delivered, final.Status())
	s.NotNil(final.CompletedAt())
}

func (s *UnitOfWorkTestSuite) TestDuplicateRevenueEntryRefused() {
	ctx := context.Background()

	code := kernel.NewRandomDispatchCode()
	amount, err := kernel.MoneyFromString("10.00")
	s.Require().NoError(err)
	entry, err := revenue.NewEntry(code, amount, time.Now().UTC())
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.RevenueRepository().Add(ctx, entry))
	s.Require().NoError(uow.Commit(ctx))

	dup := s.factory.Create()
	s.Require().NoError(dup.Begin(ctx))
	err = dup.RevenueRepository().Add(ctx, entry)
	s.Require().Error(err)
	s.Require().NoError(dup.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestConcurrentCartsAreSerialized() {
	ctx := context.Background()
	s.seedDefaultFees()
	milk := s.addProduct("milk", "1.20", 5)

	handler := commands.NewPlaceOrderCommandHandler(funcPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return s.factory.Create()
	}))

	distance, err := kernel.NewDistance(10)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewPlaceOrderCommand(
				kernel.NewUUID(),
				[]commands.OrderItem{{ProductID: milk.ID(), Quantity: 3}},
				distance,
			)
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	s.Equal(1, succeeded, "exactly one of two competing carts must win")

	shelf, err := s.reloadProduct(milk.ID())
	s.Require().NoError(err)
	s.Equal(2, shelf.Stock())
}

func (s *UnitOfWorkTestSuite) reloadOrder(code kernel.DispatchCode) (*order.Order, error) {
	ctx := context.Background()
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetByCode(ctx, code)
}

func (s *UnitOfWorkTestSuite) reloadProduct(id kernel.UUID) (*product.Product, error) {
	ctx := context.Background()
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.ProductRepository().Get(ctx, id)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

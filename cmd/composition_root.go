package cmd

import (
	"context"
	"errors"

	"minishop/internal/adapters/out/export"
	"minishop/internal/adapters/out/notify"
	"minishop/internal/adapters/out/postgres"
	"minishop/internal/core/application/usecases/commands"
	"minishop/internal/core/application/usecases/queries"
	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/core/ports"
	"minishop/internal/pkg/errs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.CreateDispatchNotifier())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelUoWFactory = FuncCancelUoWFactory(func() commands.CancelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.CancelUoWFactory = FuncCancelUoWFactory(func() commands.CancelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.configs.OrderGracePeriod)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetFeesCommandHandler() commands.SetFeesCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetFeesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetFeesQueryHandler() queries.GetFeesQueryHandler {
	return queries.NewGetFeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueReportQueryHandler() queries.GetRevenueReportQueryHandler {
	return queries.NewGetRevenueReportQueryHandler(c.gormDB)
}

// SeedDefaultFees installs the default fee table on first run.
// Does nothing when a fee table is already configured.
func (c *CompositionRoot) SeedDefaultFees(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.TariffRepository().Get(ctx); err == nil {
		return uow.Rollback(ctx)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := uow.TariffRepository().Save(ctx, tariff.DefaultFeeTable()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateDispatchNotifier() ports.DispatchNotifier {
	return notify.NewWebhookNotifier(c.configs.CourierWebhookURL)
}

func (c *CompositionRoot) CreateReportExporters() map[string]ports.ReportExporter {
	return map[string]ports.ReportExporter{
		"csv": export.NewCSVExporter(),
		"pdf": export.NewPDFExporter(),
	}
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCancelUoWFactory func() commands.CancelUoW

func (f FuncCancelUoWFactory) Create() commands.CancelUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

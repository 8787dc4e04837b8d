package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryRequestCommandHandler() commands.CreateDeliveryRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchDeliveryCommandHandler() commands.DispatchDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryRequestQueryHandler() queries.GetDeliveryRequestQueryHandler {
	return queries.NewGetDeliveryRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePendingRequestsQueryHandler() queries.GetStalePendingRequestsQueryHandler {
	return queries.NewGetStalePendingRequestsQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

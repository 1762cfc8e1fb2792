package cmd

import (
	"log/slog"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"
	"fleet/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. One instance is built at
// startup and every handler is created from it.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	locker     *commands.EntityLocker
}

// NewCompositionRoot creates the composition root from the opened
// infrastructure handles.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, cache ports.Cache) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		locker:     commands.NewEntityLocker(),
	}
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	return commands.NewCreateTruckCommandHandler(c.truckUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateUpdateTruckCommandHandler() commands.UpdateTruckCommandHandler {
	return commands.NewUpdateTruckCommandHandler(c.truckUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	return commands.NewDeleteTruckCommandHandler(c.truckUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.admissionUoWFactory(), c.locker, c.cache)
}

func (c *CompositionRoot) CreateGetTruckByIDQueryHandler() queries.GetTruckByIDQueryHandler {
	return queries.NewGetTruckByIDQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetAllTrucksQueryHandler() queries.GetAllTrucksQueryHandler {
	return queries.NewGetAllTrucksQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetDriverByIDQueryHandler() queries.GetDriverByIDQueryHandler {
	return queries.NewGetDriverByIDQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetDeliveryByIDQueryHandler() queries.GetDeliveryByIDQueryHandler {
	return queries.NewGetDeliveryByIDQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetDeliveriesByPeriodQueryHandler() queries.GetDeliveriesByPeriodQueryHandler {
	return queries.NewGetDeliveriesByPeriodQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetTodayTotalQueryHandler() queries.GetTodayTotalQueryHandler {
	return queries.NewGetTodayTotalQueryHandler(c.gormDB, c.cache)
}

// CreateHTTPServer builds the HTTP server with every route handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateTruckCommandHandler(),
		c.CreateUpdateTruckCommandHandler(),
		c.CreateDeleteTruckCommandHandler(),
		c.CreateCreateDriverCommandHandler(),
		c.CreateUpdateDriverCommandHandler(),
		c.CreateDeleteDriverCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateGetTruckByIDQueryHandler(),
		c.CreateGetAllTrucksQueryHandler(),
		c.CreateGetDriverByIDQueryHandler(),
		c.CreateGetAllDriversQueryHandler(),
		c.CreateGetDeliveryByIDQueryHandler(),
		c.CreateGetAllDeliveriesQueryHandler(),
		c.CreateGetDeliveriesByPeriodQueryHandler(),
		c.CreateGetTodayTotalQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetTodayTotalQueryHandler(), logger)
}

func (c *CompositionRoot) truckUoWFactory() commands.TruckUoWFactory {
	return FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) admissionUoWFactory() commands.AdmissionUoWFactory {
	return FuncAdmissionUoWFactory(func() commands.AdmissionUoW {
		return c.uowFactory.Create()
	})
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncAdmissionUoWFactory func() commands.AdmissionUoW

func (f FuncAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return f()
}

package cmd

import (
	"log/slog"

	"exportflow/internal/adapters/in/http"
	"exportflow/internal/adapters/out/kafka"
	"exportflow/internal/adapters/out/postgres"
	"exportflow/internal/adapters/out/postgres/identifiergen"
	"exportflow/internal/adapters/out/postgres/manifestrepo"
	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/application/usecases/queries"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/services"
	"exportflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	generator  *identifiergen.GormIdentifierGenerator
	publisher  *kafka.TrackingPublisher
	policy     services.MismatchPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := services.NewMismatchPolicy(config.WeightTolerance, config.DimensionTolerance)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		generator:  identifiergen.NewGormIdentifierGenerator(gormDB),
		publisher:  kafka.NewTrackingPublisher(config.KafkaHost, config.KafkaTrackingTopic, logger),
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	return commands.NewBookShipmentCommandHandler(c.shipmentUoWFactory(), c.generator)
}

func (c *CompositionRoot) CreateRecordIntakeCommandHandler() commands.RecordIntakeCommandHandler {
	return commands.NewRecordIntakeCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateClearMismatchCommandHandler() commands.ClearMismatchCommandHandler {
	return commands.NewClearMismatchCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRecordLabelingCommandHandler() commands.RecordLabelingCommandHandler {
	return commands.NewRecordLabelingCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateBagCommandHandler() commands.CreateBagCommandHandler {
	return commands.NewCreateBagCommandHandler(c.bagUoWFactory(), c.generator)
}

func (c *CompositionRoot) CreateAssignToBagCommandHandler() commands.AssignToBagCommandHandler {
	return commands.NewAssignToBagCommandHandler(c.bagUoWFactory())
}

func (c *CompositionRoot) CreateRemoveFromBagCommandHandler() commands.RemoveFromBagCommandHandler {
	return commands.NewRemoveFromBagCommandHandler(c.bagUoWFactory())
}

func (c *CompositionRoot) CreateSealBagCommandHandler() commands.SealBagCommandHandler {
	return commands.NewSealBagCommandHandler(c.bagUoWFactory())
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	return commands.NewCreateManifestCommandHandler(c.manifestUoWFactory(), c.generator)
}

func (c *CompositionRoot) CreateAddBagToManifestCommandHandler() commands.AddBagToManifestCommandHandler {
	return commands.NewAddBagToManifestCommandHandler(c.manifestUoWFactory(), c.publisher, c.config.RequireSealedBags)
}

func (c *CompositionRoot) CreateRemoveBagFromManifestCommandHandler() commands.RemoveBagFromManifestCommandHandler {
	return commands.NewRemoveBagFromManifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateLockManifestCommandHandler() commands.LockManifestCommandHandler {
	return commands.NewLockManifestCommandHandler(c.manifestUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRecordHandoverCommandHandler() commands.RecordHandoverCommandHandler {
	return commands.NewRecordHandoverCommandHandler(c.manifestUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRecordDepartureCommandHandler() commands.RecordDepartureCommandHandler {
	return commands.NewRecordDepartureCommandHandler(c.manifestUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManifestQueryHandler() queries.GetManifestQueryHandler {
	return queries.NewGetManifestQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateBookShipmentCommandHandler(),
		c.CreateRecordIntakeCommandHandler(),
		c.CreateClearMismatchCommandHandler(),
		c.CreateRecordLabelingCommandHandler(),
		c.CreateCreateBagCommandHandler(),
		c.CreateAssignToBagCommandHandler(),
		c.CreateRemoveFromBagCommandHandler(),
		c.CreateSealBagCommandHandler(),
		c.CreateCreateManifestCommandHandler(),
		c.CreateAddBagToManifestCommandHandler(),
		c.CreateRemoveBagFromManifestCommandHandler(),
		c.CreateLockManifestCommandHandler(),
		c.CreateRecordHandoverCommandHandler(),
		c.CreateRecordDepartureCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateGetManifestQueryHandler(),
	)
}

// CreateJobManager wires the scheduled jobs. The departure watch reads
// manifests outside any unit of work, so it gets its own repository.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	manifests := manifestrepo.NewGormManifestRepository(c.gormDB, noopTracker{})
	return jobs.NewJobManager(manifests, c.logger)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bagUoWFactory() commands.BagUoWFactory {
	return FuncBagUoWFactory(func() commands.BagUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manifestUoWFactory() commands.ManifestUoWFactory {
	return FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncBagUoWFactory func() commands.BagUoW

func (f FuncBagUoWFactory) Create() commands.BagUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

// noopTracker satisfies the repository tracker interface for read paths that
// never join a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

package queries_test

import (
	"context"
	"testing"
	"time"

	"exportflow/internal/adapters/out/postgres/bagrepo"
	"exportflow/internal/adapters/out/postgres/manifestrepo"
	"exportflow/internal/adapters/out/postgres/shipmentrepo"
	"exportflow/internal/adapters/out/postgres/trackingrepo"
	"exportflow/internal/core/application/usecases/queries"
	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	shipmentHandler queries.GetShipmentQueryHandler
	manifestHandler queries.GetManifestQueryHandler

	shipmentRepo *shipmentrepo.GormShipmentRepository
	bagRepo      *bagrepo.GormBagRepository
	manifestRepo *manifestrepo.GormManifestRepository
	trackingRepo *trackingrepo.GormTrackingRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&bagrepo.BagDTO{}, &bagrepo.BagShipmentDTO{},
		&manifestrepo.ManifestDTO{}, &manifestrepo.ManifestBagDTO{},
		&trackingrepo.EventDTO{},
	)
	suite.Require().NoError(err)

	suite.shipmentHandler = queries.NewGetShipmentQueryHandler(db)
	suite.manifestHandler = queries.NewGetManifestQueryHandler(db)

	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, mockAggregateTracker{})
	suite.bagRepo = bagrepo.NewGormBagRepository(db, mockAggregateTracker{})
	suite.manifestRepo = manifestrepo.NewGormManifestRepository(db, mockAggregateTracker{})
	suite.trackingRepo = trackingrepo.NewGormTrackingRepository(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	for _, table := range []string{"tracking_events", "manifest_bags", "manifests", "bag_shipments", "bags", "shipments"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) bookedShipment(awbValue, destination string) *shipment.Shipment {
	weight, err := shipment.NewWeight(2.0)
	suite.Require().NoError(err)
	dims, err := shipment.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(kernel.NewUUID(), destination, weight, dims, time.Now())
	suite.Require().NoError(err)

	awb, err := kernel.AWBFromString(awbValue)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Book(awb, time.Now()))

	return aggregate
}

func (suite *QueryHandlersTestSuite) TestGetShipment_ReturnsShipmentWithTrackingHistory() {
	ctx := context.Background()

	aggregate := suite.bookedShipment("DH2026090100042", "HKG")
	suite.Require().NoError(suite.shipmentRepo.Add(ctx, aggregate))

	base := time.Now().UTC().Truncate(time.Second)
	first, err := tracking.NewEvent(
		kernel.NewUUID(), aggregate.ID(),
		shipment.InExportManifest.String(), "Shipment included in export manifest", "Export warehouse",
		base,
	)
	suite.Require().NoError(err)
	second, err := tracking.NewEvent(
		kernel.NewUUID(), aggregate.ID(),
		shipment.ReadyForHandover.String(), "Awaiting carrier handover", "Export warehouse",
		base.Add(time.Hour),
	)
	suite.Require().NoError(err)

	// Insert newest first so ordering comes from the query, not insertion.
	suite.Require().NoError(suite.trackingRepo.Append(ctx, second))
	suite.Require().NoError(suite.trackingRepo.Append(ctx, first))

	awb, err := kernel.AWBFromString("DH2026090100042")
	suite.Require().NoError(err)
	query, err := queries.NewGetShipmentQuery(awb)
	suite.Require().NoError(err)

	result, err := suite.shipmentHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal("DH2026090100042", result.AWB)
	suite.Equal("HKG", result.Destination)
	suite.Equal(shipment.Booked.String(), result.Status)
	suite.Equal(2.0, result.DeclaredWeightKg)
	suite.Nil(result.MeasuredWeightKg)
	suite.Nil(result.BagID)
	suite.Nil(result.ManifestID)

	suite.Require().Len(result.TrackingEvents, 2)
	suite.Equal("Shipment included in export manifest", result.TrackingEvents[0].Description)
	suite.Equal("Awaiting carrier handover", result.TrackingEvents[1].Description)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_UnknownAWB_ReturnsNotFound() {
	awb, err := kernel.AWBFromString("DH2026090199999")
	suite.Require().NoError(err)
	query, err := queries.NewGetShipmentQuery(awb)
	suite.Require().NoError(err)

	_, err = suite.shipmentHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetShipmentQuery{}

	_, err := suite.shipmentHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetShipmentQuery constructor")
}

func (suite *QueryHandlersTestSuite) TestGetManifest_ReturnsManifestWithBagRoster() {
	ctx := context.Background()

	member := suite.bookedShipment("DH2026090100043", "HKG")

	measuredWeight, err := shipment.NewWeight(2.0)
	suite.Require().NoError(err)
	measuredDims, err := shipment.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(member.RecordIntake(measuredWeight, measuredDims, true, time.Now()))
	suite.Require().NoError(member.RecordLabeling(time.Now()))

	bagAggregate, err := bag.NewBag(kernel.NewUUID(), "BG202609010042", "HKG", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(bagAggregate.AddShipment(member.ID()))
	suite.Require().NoError(member.AssignToBag(bagAggregate.ID(), time.Now()))
	suite.Require().NoError(bagAggregate.Seal("ops-1", time.Now()))

	manifestAggregate, err := manifest.NewManifest(
		kernel.NewUUID(), "MF202609010007", "CX615", "HKG",
		time.Now().Add(12*time.Hour), "ops-1", time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(manifestAggregate.AddBag(bagAggregate.ID()))
	suite.Require().NoError(bagAggregate.AttachToManifest(manifestAggregate.ID()))
	suite.Require().NoError(member.IncludeInManifest(manifestAggregate.ID(), time.Now()))

	suite.Require().NoError(suite.shipmentRepo.Add(ctx, member))
	suite.Require().NoError(suite.bagRepo.Add(ctx, bagAggregate))
	suite.Require().NoError(suite.manifestRepo.Add(ctx, manifestAggregate))

	query, err := queries.NewGetManifestQuery(manifestAggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.manifestHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(manifestAggregate.ID(), result.ID)
	suite.Equal("MF202609010007", result.Number)
	suite.Equal("CX615", result.FlightNumber)
	suite.Equal("HKG", result.Destination)
	suite.False(result.Locked)
	suite.Nil(result.DepartedAt)

	suite.Require().Len(result.Bags, 1)
	suite.Equal(bagAggregate.ID(), result.Bags[0].ID)
	suite.Equal("BG202609010042", result.Bags[0].Number)
	suite.True(result.Bags[0].Sealed)
	suite.Equal(1, result.Bags[0].ShipmentCount)
	suite.Equal([]string{"DH2026090100043"}, result.MemberShipmentAWBs)
}

func (suite *QueryHandlersTestSuite) TestGetManifest_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetManifestQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.manifestHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

package commands_test

import (
	"testing"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddBagToManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	member := sortedShipment(t)
	bagAggregate := sealedBagWith(t, "HKG", member.ID())
	require.NoError(t, member.AssignToBag(bagAggregate.ID(), member.UpdatedAt()))
	manifestAggregate := emptyManifest(t, "HKG")

	cmd, err := commands.NewAddBagToManifestCommand(manifestAggregate.ID(), bagAggregate.ID(), "ops-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	bagRepo := new(MockBagRepository)
	manifestRepo := new(MockManifestRepository)
	auditRepo := new(MockAuditRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo)
	uow.On("BagRepository").Return(bagRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	bagRepo.On("Get", ctx, bagAggregate.ID()).Return(bagAggregate, nil).Once()
	shipmentRepo.On("GetAllByBag", ctx, bagAggregate.ID()).
		Return([]*shipment.Shipment{member}, nil).Once()
	shipmentRepo.On("Update", ctx, member).Return(nil).Once()
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()
	manifestRepo.On("Update", ctx, manifestAggregate).Return(nil).Once()
	bagRepo.On("Update", ctx, bagAggregate).Return(nil).Once()
	auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockTrackingEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddBagToManifestCommandHandler(factory, publisher, true)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, manifestAggregate.ContainsBag(bagAggregate.ID()))
	require.NotNil(t, bagAggregate.ManifestRef())
	assert.Equal(t, shipment.InExportManifest, member.Status())

	manifestRepo.AssertExpectations(t)
	bagRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddBagToManifestCommandHandler_Handle_OpenBagRejected(t *testing.T) {
	ctx := t.Context()

	bagAggregate := openBag(t, "HKG")
	member := baggedShipment(t, bagAggregate.ID())
	require.NoError(t, bagAggregate.AddShipment(member.ID()))
	manifestAggregate := emptyManifest(t, "HKG")

	cmd, err := commands.NewAddBagToManifestCommand(manifestAggregate.ID(), bagAggregate.ID(), "ops-1")
	require.NoError(t, err)

	bagRepo := new(MockBagRepository)
	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	uow.On("BagRepository").Return(bagRepo).Once()
	bagRepo.On("Get", ctx, bagAggregate.ID()).Return(bagAggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddBagToManifestCommandHandler(factory, new(MockTrackingEventPublisher), true)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBagNotSealed)
	assert.True(t, manifestAggregate.IsEmpty())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddBagToManifestCommandHandler_Handle_DestinationMismatch(t *testing.T) {
	ctx := t.Context()

	member := sortedShipment(t)
	bagAggregate := sealedBagWith(t, "SIN", member.ID())
	manifestAggregate := emptyManifest(t, "HKG")

	cmd, err := commands.NewAddBagToManifestCommand(manifestAggregate.ID(), bagAggregate.ID(), "ops-1")
	require.NoError(t, err)

	bagRepo := new(MockBagRepository)
	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	uow.On("BagRepository").Return(bagRepo).Once()
	bagRepo.On("Get", ctx, bagAggregate.ID()).Return(bagAggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddBagToManifestCommandHandler(factory, new(MockTrackingEventPublisher), true)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, manifestAggregate.IsEmpty())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

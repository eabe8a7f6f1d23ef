package commands_test

import (
	"testing"
	"time"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordDepartureCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	bagAggregate := openBag(t, "HKG")
	member := baggedShipment(t, bagAggregate.ID())
	manifestAggregate := manifestWithBag(t, "HKG", bagAggregate.ID())
	require.NoError(t, member.IncludeInManifest(manifestAggregate.ID(), time.Now()))
	require.NoError(t, manifestAggregate.Lock("ops-1", time.Now()))
	require.NoError(t, member.MarkReadyForHandover(time.Now()))
	require.NoError(t, manifestAggregate.RecordHandover("CX-REF-77", time.Now()))
	require.NoError(t, member.HandOverToCarrier(time.Now()))

	cmd, err := commands.NewRecordDepartureCommand(manifestAggregate.ID(), "ops-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	manifestRepo := new(MockManifestRepository)
	auditRepo := new(MockAuditRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	shipmentRepo.On("GetAllByManifest", ctx, manifestAggregate.ID()).
		Return([]*shipment.Shipment{member}, nil).Once()
	shipmentRepo.On("Update", ctx, member).Return(nil).Once()
	trackingRepo.On("Append", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()
	manifestRepo.On("Update", ctx, manifestAggregate).Return(nil).Once()
	auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockTrackingEventPublisher)
	var published *tracking.Event
	publisher.On("Publish", ctx, mock.AnythingOfType("*tracking.Event")).
		Run(func(args mock.Arguments) { published = args.Get(1).(*tracking.Event) }).
		Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDepartureCommandHandler(factory, publisher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, manifestAggregate.IsDeparted())
	assert.Equal(t, shipment.Departed, member.Status())

	require.NotNil(t, published)
	assert.Equal(t, "Departed on flight CX615, en route to HKG", published.Description())

	manifestRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDepartureCommandHandler_Handle_Retry(t *testing.T) {
	ctx := t.Context()

	bagAggregate := openBag(t, "HKG")
	manifestAggregate := lockedManifest(t, "HKG", bagAggregate.ID())
	require.NoError(t, manifestAggregate.RecordHandover("CX-REF-77", time.Now()))
	require.NoError(t, manifestAggregate.RecordDeparture(time.Now()))
	departedAt := *manifestAggregate.DepartedAt()

	cmd, err := commands.NewRecordDepartureCommand(manifestAggregate.ID(), "ops-1")
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockTrackingEventPublisher)
	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDepartureCommandHandler(factory, publisher)

	// Retry reports the prior success with no new side effects.
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, departedAt, *manifestAggregate.DepartedAt())
	manifestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRecordDepartureCommandHandler_Handle_HandoverRequired(t *testing.T) {
	ctx := t.Context()

	bagAggregate := openBag(t, "HKG")
	manifestAggregate := lockedManifest(t, "HKG", bagAggregate.ID())

	cmd, err := commands.NewRecordDepartureCommand(manifestAggregate.ID(), "ops-1")
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	manifestRepo.On("Get", ctx, manifestAggregate.ID()).Return(manifestAggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordDepartureCommandHandler(factory, new(MockTrackingEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, manifest.ErrHandoverRequired)
	assert.False(t, manifestAggregate.IsDeparted())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
